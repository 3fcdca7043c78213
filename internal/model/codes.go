package model

import (
	"fmt"
	"strconv"
)

// InvoiceType identifies the kind of invoice document.
// Values above 1000 are corrected variants of the type 1000 below them.
type InvoiceType int

const (
	InvoiceTypeUnknown           InvoiceType = 0
	InvoiceTypeInvoice           InvoiceType = 380
	InvoiceTypeCreditNote        InvoiceType = 381
	InvoiceTypeDebitNote         InvoiceType = 383
	InvoiceTypeSelfBilledInvoice InvoiceType = 389
	InvoiceTypeCorrection        InvoiceType = 1380
)

var invoiceTypeNames = map[InvoiceType]string{
	InvoiceTypeUnknown:           "Unknown",
	InvoiceTypeInvoice:           "Invoice",
	InvoiceTypeCreditNote:        "CreditNote",
	InvoiceTypeDebitNote:         "DebitNote",
	InvoiceTypeSelfBilledInvoice: "SelfBilledInvoice",
	InvoiceTypeCorrection:        "Correction",
}

func (t InvoiceType) String() string { return enumString(invoiceTypeNames, t) }

func (t InvoiceType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *InvoiceType) UnmarshalText(b []byte) error {
	return enumParse(invoiceTypeNames, "InvoiceType", b, t)
}

// Profile is the ZUGFeRD conformance level
type Profile int

const (
	ProfileUnknown Profile = iota
	ProfileBasic
	ProfileComfort
	ProfileExtended
)

var profileNames = map[Profile]string{
	ProfileUnknown:  "Unknown",
	ProfileBasic:    "Basic",
	ProfileComfort:  "Comfort",
	ProfileExtended: "Extended",
}

func (p Profile) String() string { return enumString(profileNames, p) }

func (p Profile) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Profile) UnmarshalText(b []byte) error {
	return enumParse(profileNames, "Profile", b, p)
}

// CurrencyCode is an ISO 4217 alphabetic currency code
type CurrencyCode string

const (
	CurrencyEUR CurrencyCode = "EUR"
	CurrencyUSD CurrencyCode = "USD"
	CurrencyCHF CurrencyCode = "CHF"
	CurrencyGBP CurrencyCode = "GBP"
)

// TaxType is a duty/tax/fee type (UNTDID 5153 subset)
type TaxType int

const (
	TaxTypeUnknown TaxType = iota
	TaxTypeVAT
	TaxTypeGST
	TaxTypeLOC
	TaxTypeEXC
	TaxTypeENV
	TaxTypeSTT
	TaxTypeOTH
)

var taxTypeNames = map[TaxType]string{
	TaxTypeUnknown: "Unknown",
	TaxTypeVAT:     "VAT",
	TaxTypeGST:     "GST",
	TaxTypeLOC:     "LOC",
	TaxTypeEXC:     "EXC",
	TaxTypeENV:     "ENV",
	TaxTypeSTT:     "STT",
	TaxTypeOTH:     "OTH",
}

func (t TaxType) String() string { return enumString(taxTypeNames, t) }

func (t TaxType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *TaxType) UnmarshalText(b []byte) error {
	return enumParse(taxTypeNames, "TaxType", b, t)
}

// TaxCategory is a duty/tax/fee category (UNTDID 5305 subset)
type TaxCategory int

const (
	TaxCategoryUnknown TaxCategory = iota
	TaxCategoryA
	TaxCategoryAA
	TaxCategoryAB
	TaxCategoryAE
	TaxCategoryB
	TaxCategoryC
	TaxCategoryE
	TaxCategoryG
	TaxCategoryH
	TaxCategoryK
	TaxCategoryO
	TaxCategoryS
	TaxCategoryZ
)

var taxCategoryNames = map[TaxCategory]string{
	TaxCategoryUnknown: "Unknown",
	TaxCategoryA:       "A",
	TaxCategoryAA:      "AA",
	TaxCategoryAB:      "AB",
	TaxCategoryAE:      "AE",
	TaxCategoryB:       "B",
	TaxCategoryC:       "C",
	TaxCategoryE:       "E",
	TaxCategoryG:       "G",
	TaxCategoryH:       "H",
	TaxCategoryK:       "K",
	TaxCategoryO:       "O",
	TaxCategoryS:       "S",
	TaxCategoryZ:       "Z",
}

func (c TaxCategory) String() string { return enumString(taxCategoryNames, c) }

func (c TaxCategory) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *TaxCategory) UnmarshalText(b []byte) error {
	return enumParse(taxCategoryNames, "TaxCategory", b, c)
}

// QuantityCode is a unit of measure (UN/ECE Recommendation 20 subset)
type QuantityCode int

const (
	QuantityUnknown QuantityCode = iota
	QuantityC62 // one (unit)
	QuantityH87 // piece
	QuantityDAY
	QuantityHUR
	QuantityMIN
	QuantityWEE
	QuantityMON
	QuantityKGM
	QuantityTNE
	QuantityLTR
	QuantityMTR
	QuantityMTK
	QuantityMTQ
	QuantityKMT
	QuantityKWH
	QuantityLS
	QuantitySET
	QuantityPR
)

var quantityCodeNames = map[QuantityCode]string{
	QuantityUnknown: "Unknown",
	QuantityC62:     "C62",
	QuantityH87:     "H87",
	QuantityDAY:     "DAY",
	QuantityHUR:     "HUR",
	QuantityMIN:     "MIN",
	QuantityWEE:     "WEE",
	QuantityMON:     "MON",
	QuantityKGM:     "KGM",
	QuantityTNE:     "TNE",
	QuantityLTR:     "LTR",
	QuantityMTR:     "MTR",
	QuantityMTK:     "MTK",
	QuantityMTQ:     "MTQ",
	QuantityKMT:     "KMT",
	QuantityKWH:     "KWH",
	QuantityLS:      "LS",
	QuantitySET:     "SET",
	QuantityPR:      "PR",
}

func (q QuantityCode) String() string { return enumString(quantityCodeNames, q) }

func (q QuantityCode) MarshalText() ([]byte, error) { return []byte(q.String()), nil }

func (q *QuantityCode) UnmarshalText(b []byte) error {
	return enumParse(quantityCodeNames, "QuantityCode", b, q)
}

// TaxRegistrationScheme qualifies a tax registration number
type TaxRegistrationScheme int

const (
	TaxRegistrationUnknown TaxRegistrationScheme = iota
	TaxRegistrationFC      // fiscal number (Steuernummer)
	TaxRegistrationVA      // VAT identification number
)

var taxRegistrationSchemeNames = map[TaxRegistrationScheme]string{
	TaxRegistrationUnknown: "Unknown",
	TaxRegistrationFC:      "FC",
	TaxRegistrationVA:      "VA",
}

func (s TaxRegistrationScheme) String() string { return enumString(taxRegistrationSchemeNames, s) }

func (s TaxRegistrationScheme) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *TaxRegistrationScheme) UnmarshalText(b []byte) error {
	return enumParse(taxRegistrationSchemeNames, "TaxRegistrationScheme", b, s)
}

// SubjectCode classifies a free-text note (UNTDID 4451 subset).
// SubjectUnknown means the note carries no subject.
type SubjectCode int

const (
	SubjectUnknown SubjectCode = iota
	SubjectAAI // general information
	SubjectAAK // price conditions
	SubjectABL // legal information
	SubjectACB // additional information
	SubjectADU // note
	SubjectPMT // payment information
	SubjectPRF // price calculation formula
	SubjectREG // regulatory information
	SubjectSUR // supplier remarks
	SubjectTXD // tax declaration
)

var subjectCodeNames = map[SubjectCode]string{
	SubjectUnknown: "Unknown",
	SubjectAAI:     "AAI",
	SubjectAAK:     "AAK",
	SubjectABL:     "ABL",
	SubjectACB:     "ACB",
	SubjectADU:     "ADU",
	SubjectPMT:     "PMT",
	SubjectPRF:     "PRF",
	SubjectREG:     "REG",
	SubjectSUR:     "SUR",
	SubjectTXD:     "TXD",
}

func (s SubjectCode) String() string { return enumString(subjectCodeNames, s) }

func (s SubjectCode) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *SubjectCode) UnmarshalText(b []byte) error {
	return enumParse(subjectCodeNames, "SubjectCode", b, s)
}

// enumString returns the mnemonic of v, or its number when v is not defined
func enumString[T ~int](names map[T]string, v T) string {
	if s, ok := names[v]; ok {
		return s
	}
	return strconv.Itoa(int(v))
}

func enumParse[T ~int](names map[T]string, field string, b []byte, dst *T) error {
	s := string(b)
	for k, name := range names {
		if name == s {
			*dst = k
			return nil
		}
	}
	return NewDecodeError(field, fmt.Sprintf("unknown value %q", s), nil)
}
