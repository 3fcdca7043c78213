package cii

import (
	"strconv"

	"github.com/rezonia/zugferd/internal/model"
)

// Code tables map each enumerant to the string the schema expects.
// Enumerants missing from a table translate to "".

var invoiceTypeNames = map[model.InvoiceType]string{
	model.InvoiceTypeInvoice:    "RECHNUNG",
	model.InvoiceTypeCorrection: "KORREKTURRECHNUNG",
	model.InvoiceTypeCreditNote: "GUTSCHRIFT",
}

var profileCodes = map[model.Profile]string{
	model.ProfileBasic:    "Basic",
	model.ProfileComfort:  "Comfort",
	model.ProfileExtended: "Extended",
}

var taxTypeCodes = map[model.TaxType]string{
	model.TaxTypeVAT: "VAT",
	model.TaxTypeGST: "GST",
	model.TaxTypeLOC: "LOC",
	model.TaxTypeEXC: "EXC",
	model.TaxTypeENV: "ENV",
	model.TaxTypeSTT: "STT",
	model.TaxTypeOTH: "OTH",
}

var taxCategoryCodes = map[model.TaxCategory]string{
	model.TaxCategoryA:  "A",
	model.TaxCategoryAA: "AA",
	model.TaxCategoryAB: "AB",
	model.TaxCategoryAE: "AE",
	model.TaxCategoryB:  "B",
	model.TaxCategoryC:  "C",
	model.TaxCategoryE:  "E",
	model.TaxCategoryG:  "G",
	model.TaxCategoryH:  "H",
	model.TaxCategoryK:  "K",
	model.TaxCategoryO:  "O",
	model.TaxCategoryS:  "S",
	model.TaxCategoryZ:  "Z",
}

var quantityCodes = map[model.QuantityCode]string{
	model.QuantityC62: "C62",
	model.QuantityH87: "H87",
	model.QuantityDAY: "DAY",
	model.QuantityHUR: "HUR",
	model.QuantityMIN: "MIN",
	model.QuantityWEE: "WEE",
	model.QuantityMON: "MON",
	model.QuantityKGM: "KGM",
	model.QuantityTNE: "TNE",
	model.QuantityLTR: "LTR",
	model.QuantityMTR: "MTR",
	model.QuantityMTK: "MTK",
	model.QuantityMTQ: "MTQ",
	model.QuantityKMT: "KMT",
	model.QuantityKWH: "KWH",
	model.QuantityLS:  "LS",
	model.QuantitySET: "SET",
	model.QuantityPR:  "PR",
}

var taxRegistrationSchemeCodes = map[model.TaxRegistrationScheme]string{
	model.TaxRegistrationFC: "FC",
	model.TaxRegistrationVA: "VA",
}

var subjectCodes = map[model.SubjectCode]string{
	model.SubjectAAI: "AAI",
	model.SubjectAAK: "AAK",
	model.SubjectABL: "ABL",
	model.SubjectACB: "ACB",
	model.SubjectADU: "ADU",
	model.SubjectPMT: "PMT",
	model.SubjectPRF: "PRF",
	model.SubjectREG: "REG",
	model.SubjectSUR: "SUR",
	model.SubjectTXD: "TXD",
}

// TranslateInvoiceType returns the document name for t
func TranslateInvoiceType(t model.InvoiceType) string {
	return invoiceTypeNames[t]
}

// EncodeInvoiceType returns the numeric type code for t.
// Corrected variants (ordinal above 1000) share the code of their base type.
func EncodeInvoiceType(t model.InvoiceType) string {
	code := int(t)
	if code > 1000 {
		code -= 1000
	}
	return strconv.Itoa(code)
}

// TranslateProfile returns the guideline name for p
func TranslateProfile(p model.Profile) string {
	return profileCodes[p]
}

// TranslateTaxType returns the tax type code for t
func TranslateTaxType(t model.TaxType) string {
	return taxTypeCodes[t]
}

// TranslateTaxCategory returns the tax category code for c
func TranslateTaxCategory(c model.TaxCategory) string {
	return taxCategoryCodes[c]
}

// TranslateQuantityCode returns the unit of measure code for q
func TranslateQuantityCode(q model.QuantityCode) string {
	return quantityCodes[q]
}

// TranslateTaxRegistrationScheme returns the schemeID for s
func TranslateTaxRegistrationScheme(s model.TaxRegistrationScheme) string {
	return taxRegistrationSchemeCodes[s]
}

// TranslateSubjectCode returns the note subject code for s
func TranslateSubjectCode(s model.SubjectCode) string {
	return subjectCodes[s]
}
