package cii

import (
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/rezonia/zugferd/internal/model"
)

// writeElementString appends <tag>value</tag> unconditionally
func writeElementString(parent *etree.Element, tag, value string) *etree.Element {
	e := parent.CreateElement(tag)
	e.SetText(value)
	return e
}

// writeOptionalElementString appends <tag>value</tag> only for a non-empty value
func writeOptionalElementString(parent *etree.Element, tag, value string) {
	if value == "" {
		return
	}
	writeElementString(parent, tag, value)
}

// writeElementWithAttribute appends <tag attr="attrValue">value</tag> unconditionally
func writeElementWithAttribute(parent *etree.Element, tag, attr, attrValue, value string) *etree.Element {
	e := parent.CreateElement(tag)
	e.CreateAttr(attr, attrValue)
	e.SetText(value)
	return e
}

// writeDateTime appends <tag format="102">YYYYMMDD</tag>
func writeDateTime(parent *etree.Element, tag string, t time.Time) {
	writeElementWithAttribute(parent, tag, "format", DateFormat, FormatDate(t))
}

// writeOptionalAmount appends <tag currencyID=...>0.00</tag> when the amount is present
func (c *composer) writeOptionalAmount(parent *etree.Element, tag string, v decimal.NullDecimal) {
	if !v.Valid {
		return
	}
	c.writeAmount(parent, tag, v.Decimal)
}

func (c *composer) writeAmount(parent *etree.Element, tag string, v decimal.Decimal) {
	writeElementWithAttribute(parent, tag, "currencyID", string(c.d.Currency), FormatCurrency(v))
}

// writeTaxes appends one ApplicableTradeTax per invoice level tax, in order
func (c *composer) writeTaxes(parent *etree.Element) {
	for _, tax := range c.d.Taxes {
		e := parent.CreateElement("ApplicableTradeTax")
		c.writeAmount(e, "CalculatedAmount", tax.TaxAmount)
		writeElementString(e, "TypeCode", TranslateTaxType(tax.TypeCode))
		c.writeAmount(e, "BasisAmount", tax.BasisAmount)
		writeElementString(e, "CategoryCode", TranslateTaxCategory(tax.CategoryCode))
		writeElementString(e, "ApplicablePercent", FormatPercent(tax.Percent))
	}
}

// writeNotes appends one IncludedNote per note, in order.
// SubjectCode is left out for SubjectUnknown.
func (c *composer) writeNotes(parent *etree.Element) {
	for _, n := range c.d.Notes {
		e := parent.CreateElement("IncludedNote")
		writeElementString(e, "Content", n.Content)
		if n.SubjectCode != model.SubjectUnknown {
			writeElementString(e, "SubjectCode", TranslateSubjectCode(n.SubjectCode))
		}
	}
}

// writeOptionalParty appends a <tag> party block. A nil party writes nothing.
func writeOptionalParty(parent *etree.Element, tag string, party *model.Party, contact *model.Contact, registrations []model.TaxRegistration) {
	if party == nil {
		return
	}

	e := parent.CreateElement(tag)
	if id := party.GlobalID; id != nil && id.ID != "" && id.SchemeID != "" {
		writeElementWithAttribute(e, "GlobalID", "schemeID", id.SchemeID, id.ID)
	}
	writeElementString(e, "Name", party.Name)
	writeOptionalContact(e, "DefinedTradeContact", contact)

	addr := e.CreateElement("PostalTradeAddress")
	writeElementString(addr, "PostcodeCode", party.Postcode)
	writeElementString(addr, "LineOne", FormatStreet(party.Street, party.StreetNo))
	writeElementString(addr, "CityName", party.City)
	writeElementString(addr, "CountryID", party.Country)

	for _, reg := range registrations {
		r := e.CreateElement("SpecifiedTaxRegistration")
		writeElementWithAttribute(r, "ID", "schemeID", TranslateTaxRegistrationScheme(reg.SchemeID), reg.No)
	}
}

// writeOptionalContact appends a contact block holding the contact's name.
// TODO: write department, phone and e-mail once the schema mapping for them is settled.
func writeOptionalContact(parent *etree.Element, tag string, contact *model.Contact) {
	if contact == nil {
		return
	}
	e := parent.CreateElement(tag)
	writeOptionalElementString(e, "Name", contact.Name)
}

// writeCategoryTax appends the short tax block embedded in allowances and service charges
func writeCategoryTax(parent *etree.Element, tag string, tax *model.Tax) {
	if tax == nil {
		return
	}
	e := parent.CreateElement(tag)
	writeElementString(e, "TypeCode", TranslateTaxType(tax.TypeCode))
	writeElementString(e, "CategoryCode", TranslateTaxCategory(tax.CategoryCode))
	writeElementString(e, "ApplicablePercent", FormatPercent(tax.Percent))
}
