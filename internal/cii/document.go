package cii

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/rezonia/zugferd/internal/model"
)

// Namespaces declared on the document root
const (
	NamespaceRSM   = "urn:un:unece:uncefact:data:standard:CBFBUY:5"
	NamespaceXS    = "http://www.w3.org/2001/XMLSchema"
	NamespaceXSI   = "http://www.w3.org/2001/XMLSchema-instance"
	SchemaLocation = NamespaceRSM + " ../Schema/Invoice.xsd"
)

// composer walks one descriptor and appends its elements in schema order.
// It never modifies the descriptor.
type composer struct {
	d *model.InvoiceDescriptor
}

func compose(d *model.InvoiceDescriptor) *etree.Document {
	c := &composer{d: d}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("rsm:Invoice")
	root.CreateAttr("xmlns:xs", NamespaceXS)
	root.CreateAttr("xmlns:rsm", NamespaceRSM)
	root.CreateAttr("xmlns:xsi", NamespaceXSI)
	root.CreateAttr("xsi:schemaLocation", SchemaLocation)

	c.writeContext(root)
	c.writeHeader(root)

	tx := root.CreateElement("rsm:SpecifiedSupplyChainTradeTransaction")
	c.writeAgreement(tx)
	c.writeDelivery(tx)
	c.writeSettlement(tx)
	c.writeLineItems(tx)

	return doc
}

func (c *composer) writeContext(root *etree.Element) {
	e := root.CreateElement("rsm:SpecifiedExchangedDocumentContext")
	writeElementString(e, "TestIndicator", FormatBool(c.d.IsTest))
	p := e.CreateElement("GuidelineSpecifiedDocumentContextParameter")
	writeElementString(p, "ID", TranslateProfile(c.d.Profile))
}

func (c *composer) writeHeader(root *etree.Element) {
	e := root.CreateElement("rsm:HeaderExchangedDocument")
	writeElementString(e, "ID", c.d.InvoiceNo)
	writeElementString(e, "Name", TranslateInvoiceType(c.d.Type))
	writeElementString(e, "TypeCode", EncodeInvoiceType(c.d.Type))
	// mandatory; an unset date renders as 00010101
	writeDateTime(e, "IssueDateTime", c.d.InvoiceDate.Time)
	c.writeNotes(e)
}

func (c *composer) writeAgreement(tx *etree.Element) {
	e := tx.CreateElement("ApplicableSupplyChainTradeAgreement")
	writeElementString(e, "BuyerReference", c.d.ReferenceOrderNo)

	writeOptionalParty(e, "SellerTradeParty", c.d.Seller, nil, c.d.SellerTaxRegistration)
	writeOptionalParty(e, "BuyerTradeParty", c.d.Buyer, c.d.BuyerContact, c.d.BuyerTaxRegistration)

	if c.d.OrderDate.Valid && c.d.OrderNo != "" {
		ref := e.CreateElement("BuyerOrderReferencedDocument")
		writeDateTime(ref, "IssueDateTime", c.d.OrderDate.Time)
		writeElementString(ref, "ID", c.d.OrderNo)
	}
}

func (c *composer) writeDelivery(tx *etree.Element) {
	e := tx.CreateElement("ApplicableSupplyChainTradeDelivery")

	if c.d.ActualDeliveryDate.Valid {
		ev := e.CreateElement("ActualDeliverySupplyChainEvent")
		writeDateTime(ev, "OccurrenceDateTime", c.d.ActualDeliveryDate.Time)
	}

	if c.d.DeliveryNoteDate.Valid && c.d.DeliveryNoteNo != "" {
		ref := e.CreateElement("DeliveryNoteReferencedDocument")
		writeElementString(ref, "ID", c.d.DeliveryNoteNo)
		writeDateTime(ref, "IssueDateTime", c.d.DeliveryNoteDate.Time)
	}
}

func (c *composer) writeSettlement(tx *etree.Element) {
	e := tx.CreateElement("ApplicableSupplyChainTradeSettlement")
	writeOptionalElementString(e, "PaymentReference", c.d.InvoiceNoAsReference)
	writeElementString(e, "InvoiceCurrencyCode", string(c.d.Currency))
	c.writeTaxes(e)

	for _, ac := range c.d.TradeAllowanceCharges {
		a := e.CreateElement("SpecifiedTradeAllowanceCharge")
		writeElementString(a, "ChargeIndicator", FormatBool(ac.ChargeIndicator))
		// basis carries the charge's own currency, the actual amount none
		writeElementWithAttribute(a, "BasisAmount", "currencyID", string(ac.Currency), FormatCurrency(ac.BasisAmount))
		writeElementString(a, "ActualAmount", FormatCurrency(ac.Amount))
		writeOptionalElementString(a, "Reason", ac.Reason)
		writeCategoryTax(a, "CategoryTradeTax", ac.Tax)
	}

	for _, sc := range c.d.ServiceCharges {
		s := e.CreateElement("SpecifiedLogisticsServiceCharge")
		writeOptionalElementString(s, "Description", sc.Description)
		writeElementString(s, "AppliedAmount", FormatCurrency(sc.Amount))
		writeCategoryTax(s, "AppliedTradeTax", sc.Tax)
	}

	if pt := c.d.PaymentTerms; pt != nil {
		p := e.CreateElement("SpecifiedTradePaymentTerms")
		writeOptionalElementString(p, "Description", pt.Description)
		if pt.DueDate.Valid {
			writeDateTime(p, "DueDateDateTime", pt.DueDate.Time)
		}
	}

	sum := e.CreateElement("SpecifiedTradeSettlementMonetarySummation")
	c.writeOptionalAmount(sum, "LineTotalAmount", c.d.LineTotalAmount)
	c.writeOptionalAmount(sum, "ChargeTotalAmount", c.d.ChargeTotalAmount)
	c.writeOptionalAmount(sum, "AllowanceTotalAmount", c.d.AllowanceTotalAmount)
	c.writeOptionalAmount(sum, "TaxBasisTotalAmount", c.d.TaxBasisAmount)
	c.writeOptionalAmount(sum, "TaxTotalAmount", c.d.TaxTotalAmount)
	c.writeOptionalAmount(sum, "GrandTotalAmount", c.d.GrandTotalAmount)
	c.writeOptionalAmount(sum, "TotalPrepaidAmount", c.d.TotalPrepaidAmount)
	c.writeOptionalAmount(sum, "DuePayableAmount", c.d.DuePayableAmount)
}

func (c *composer) writeLineItems(tx *etree.Element) {
	for i, item := range c.d.TradeLineItems {
		e := tx.CreateElement("IncludedSupplyChainTradeLineItem")

		line := e.CreateElement("AssociatedDocumentLineDocument")
		writeElementString(line, "LineID", strconv.Itoa(i+1))

		unitCode := TranslateQuantityCode(item.UnitCode)

		agreement := e.CreateElement("SpecifiedSupplyChainTradeAgreement")
		gross := agreement.CreateElement("GrossPriceProductTradePrice")
		c.writeOptionalAmount(gross, "ChargeAmount", item.GrossUnitPrice)
		writeElementWithAttribute(gross, "BasisQuantity", "unitCode", unitCode, FormatQuantity(item.UnitQuantity))
		net := agreement.CreateElement("NetPriceProductTradePrice")
		c.writeOptionalAmount(net, "ChargeAmount", item.NetUnitPrice)
		writeElementWithAttribute(net, "BasisQuantity", "unitCode", unitCode, FormatQuantity(item.UnitQuantity))

		delivery := e.CreateElement("SpecifiedSupplyChainTradeDelivery")
		writeElementWithAttribute(delivery, "BilledQuantity", "unitCode", unitCode, FormatQuantity(item.BilledQuantity))

		settlement := e.CreateElement("SpecifiedSupplyChainTradeSettlement")
		// Line taxes are written with the enumerant names and the plain rate,
		// unlike the translated codes of the invoice level tax list.
		tax := settlement.CreateElement("ApplicableTradeTax")
		writeElementString(tax, "TypeCode", item.TaxType.String())
		writeElementString(tax, "CategoryCode", item.TaxCategoryCode.String())
		writeElementString(tax, "ApplicablePercent", FormatQuantity(item.TaxPercent))
		sum := settlement.CreateElement("SpecifiedTradeSettlementMonetarySummation")
		c.writeAmount(sum, "LineTotalAmount", item.Total())

		product := e.CreateElement("SpecifiedTradeProduct")
		writeElementWithAttribute(product, "GlobalID", "schemeID", item.GlobalID.SchemeID, item.GlobalID.ID)
		writeOptionalElementString(product, "SellerAssignedID", item.SellerAssignedID)
		writeOptionalElementString(product, "BuyerAssignedID", item.BuyerAssignedID)
		writeOptionalElementString(product, "Description", item.Description)
		writeOptionalElementString(product, "Name", item.Name)
	}
}
