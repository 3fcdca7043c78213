// Package zugferd provides a public API for writing ZUGFeRD 1.0 invoices.
//
// Build an InvoiceDescriptor and hand it to Save or SaveFile; the document
// is written as UN/CEFACT Cross Industry Invoice XML.
//
// Example usage:
//
//	d := &zugferd.InvoiceDescriptor{
//	    InvoiceNo:   "471102",
//	    InvoiceDate: zugferd.Date(2013, time.March, 5),
//	    Type:        zugferd.InvoiceTypeInvoice,
//	    Currency:    zugferd.CurrencyEUR,
//	}
//	if err := zugferd.SaveFile("invoice.xml", d); err != nil {
//	    log.Fatal(err)
//	}
package zugferd

import "github.com/rezonia/zugferd/internal/model"

// Re-export core types for public API
type (
	InvoiceDescriptor    = model.InvoiceDescriptor
	Note                 = model.Note
	GlobalID             = model.GlobalID
	Party                = model.Party
	Contact              = model.Contact
	TaxRegistration      = model.TaxRegistration
	Tax                  = model.Tax
	TradeAllowanceCharge = model.TradeAllowanceCharge
	ServiceCharge        = model.ServiceCharge
	PaymentTerms         = model.PaymentTerms
	TradeLineItem        = model.TradeLineItem
	NullDate             = model.NullDate
)

// Re-export code list types
type (
	InvoiceType           = model.InvoiceType
	Profile               = model.Profile
	CurrencyCode          = model.CurrencyCode
	TaxType               = model.TaxType
	TaxCategory           = model.TaxCategory
	QuantityCode          = model.QuantityCode
	TaxRegistrationScheme = model.TaxRegistrationScheme
	SubjectCode           = model.SubjectCode
)

// Re-export invoice types
const (
	InvoiceTypeUnknown           = model.InvoiceTypeUnknown
	InvoiceTypeInvoice           = model.InvoiceTypeInvoice
	InvoiceTypeCreditNote        = model.InvoiceTypeCreditNote
	InvoiceTypeDebitNote         = model.InvoiceTypeDebitNote
	InvoiceTypeSelfBilledInvoice = model.InvoiceTypeSelfBilledInvoice
	InvoiceTypeCorrection        = model.InvoiceTypeCorrection
)

// Re-export profiles
const (
	ProfileUnknown  = model.ProfileUnknown
	ProfileBasic    = model.ProfileBasic
	ProfileComfort  = model.ProfileComfort
	ProfileExtended = model.ProfileExtended
)

// Re-export currencies
const (
	CurrencyEUR = model.CurrencyEUR
	CurrencyUSD = model.CurrencyUSD
	CurrencyCHF = model.CurrencyCHF
	CurrencyGBP = model.CurrencyGBP
)

// Re-export common codes
const (
	TaxTypeVAT        = model.TaxTypeVAT
	TaxCategoryS      = model.TaxCategoryS
	TaxCategoryZ      = model.TaxCategoryZ
	TaxCategoryE      = model.TaxCategoryE
	TaxRegistrationFC = model.TaxRegistrationFC
	TaxRegistrationVA = model.TaxRegistrationVA
	QuantityC62       = model.QuantityC62
	QuantityH87       = model.QuantityH87
	QuantityHUR       = model.QuantityHUR
)

// Re-export error types
type (
	WriteError  = model.WriteError
	DecodeError = model.DecodeError
)

// ErrNilDescriptor is returned when no invoice is passed
var ErrNilDescriptor = model.ErrNilDescriptor

// Date returns a present date at midnight UTC
var Date = model.Date

// DecodeDescriptor reads one JSON encoded descriptor
var DecodeDescriptor = model.DecodeDescriptor
