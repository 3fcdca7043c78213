package model

import (
	"github.com/shopspring/decimal"

	dec "github.com/rezonia/zugferd/internal/decimal"
)

// InvoiceDescriptor is the complete invoice handed to the writer.
// Optional amounts use decimal.NullDecimal and optional dates use NullDate;
// an empty string means an optional text is absent.
type InvoiceDescriptor struct {
	InvoiceNo   string       `json:"invoice_no"`
	InvoiceDate NullDate     `json:"invoice_date"`
	Type        InvoiceType  `json:"type"`
	Profile     Profile      `json:"profile"`
	IsTest      bool         `json:"is_test"`
	Currency    CurrencyCode `json:"currency"`
	Notes       []Note       `json:"notes,omitempty"`

	// ReferenceOrderNo is the buyer reference
	ReferenceOrderNo string   `json:"reference_order_no"`
	OrderNo          string   `json:"order_no,omitempty"`
	OrderDate        NullDate `json:"order_date"`

	ActualDeliveryDate NullDate `json:"actual_delivery_date"`
	DeliveryNoteNo     string   `json:"delivery_note_no,omitempty"`
	DeliveryNoteDate   NullDate `json:"delivery_note_date"`

	// InvoiceNoAsReference is the payment reference
	InvoiceNoAsReference string `json:"invoice_no_as_reference,omitempty"`

	Seller                *Party            `json:"seller,omitempty"`
	SellerTaxRegistration []TaxRegistration `json:"seller_tax_registration,omitempty"`
	Buyer                 *Party            `json:"buyer,omitempty"`
	BuyerContact          *Contact          `json:"buyer_contact,omitempty"`
	BuyerTaxRegistration  []TaxRegistration `json:"buyer_tax_registration,omitempty"`

	Taxes                 []Tax                  `json:"taxes,omitempty"`
	TradeAllowanceCharges []TradeAllowanceCharge `json:"trade_allowance_charges,omitempty"`
	ServiceCharges        []ServiceCharge        `json:"service_charges,omitempty"`
	PaymentTerms          *PaymentTerms          `json:"payment_terms,omitempty"`

	LineTotalAmount      decimal.NullDecimal `json:"line_total_amount"`
	ChargeTotalAmount    decimal.NullDecimal `json:"charge_total_amount"`
	AllowanceTotalAmount decimal.NullDecimal `json:"allowance_total_amount"`
	TaxBasisAmount       decimal.NullDecimal `json:"tax_basis_amount"`
	TaxTotalAmount       decimal.NullDecimal `json:"tax_total_amount"`
	GrandTotalAmount     decimal.NullDecimal `json:"grand_total_amount"`
	TotalPrepaidAmount   decimal.NullDecimal `json:"total_prepaid_amount"`
	DuePayableAmount     decimal.NullDecimal `json:"due_payable_amount"`

	TradeLineItems []TradeLineItem `json:"trade_line_items,omitempty"`
}

// Note is a free-text header note
type Note struct {
	Content     string      `json:"content"`
	SubjectCode SubjectCode `json:"subject_code"`
}

// GlobalID is an identifier issued under a registered scheme (e.g. GLN, GTIN)
type GlobalID struct {
	SchemeID string `json:"scheme_id"`
	ID       string `json:"id"`
}

// Party is a seller or buyer
type Party struct {
	GlobalID *GlobalID `json:"global_id,omitempty"`
	Name     string    `json:"name"`
	Postcode string    `json:"postcode"`
	Street   string    `json:"street"`
	StreetNo string    `json:"street_no,omitempty"`
	City     string    `json:"city"`
	Country  string    `json:"country"`
}

// Contact is a person at a party. Only Name is written to the document.
type Contact struct {
	Name         string `json:"name"`
	OrgUnit      string `json:"org_unit,omitempty"`
	PhoneNo      string `json:"phone_no,omitempty"`
	EmailAddress string `json:"email_address,omitempty"`
}

// TaxRegistration is a tax number registered under a scheme
type TaxRegistration struct {
	SchemeID TaxRegistrationScheme `json:"scheme_id"`
	No       string                `json:"no"`
}

// Tax is one applicable tax. At invoice level all amounts are written;
// embedded in a charge only type, category and percent are.
type Tax struct {
	TaxAmount    decimal.Decimal `json:"tax_amount"`
	BasisAmount  decimal.Decimal `json:"basis_amount"`
	Percent      decimal.Decimal `json:"percent"`
	TypeCode     TaxType         `json:"type_code"`
	CategoryCode TaxCategory     `json:"category_code"`
}

// TradeAllowanceCharge is a document level allowance (discount) or charge
type TradeAllowanceCharge struct {
	ChargeIndicator bool            `json:"charge_indicator"`
	Currency        CurrencyCode    `json:"currency"`
	BasisAmount     decimal.Decimal `json:"basis_amount"`
	Amount          decimal.Decimal `json:"amount"`
	Reason          string          `json:"reason,omitempty"`
	Tax             *Tax            `json:"tax,omitempty"`
}

// ServiceCharge is a logistics service charge such as freight
type ServiceCharge struct {
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Tax         *Tax            `json:"tax,omitempty"`
}

// PaymentTerms describes when and how the invoice is to be paid
type PaymentTerms struct {
	Description string   `json:"description,omitempty"`
	DueDate     NullDate `json:"due_date"`
}

// TradeLineItem is one invoiced product or service
type TradeLineItem struct {
	GlobalID         GlobalID            `json:"global_id"`
	SellerAssignedID string              `json:"seller_assigned_id,omitempty"`
	BuyerAssignedID  string              `json:"buyer_assigned_id,omitempty"`
	Name             string              `json:"name,omitempty"`
	Description      string              `json:"description,omitempty"`
	UnitCode         QuantityCode        `json:"unit_code"`
	UnitQuantity     decimal.Decimal     `json:"unit_quantity"`
	BilledQuantity   decimal.Decimal     `json:"billed_quantity"`
	GrossUnitPrice   decimal.NullDecimal `json:"gross_unit_price"`
	NetUnitPrice     decimal.NullDecimal `json:"net_unit_price"`
	TaxType          TaxType             `json:"tax_type"`
	TaxCategoryCode  TaxCategory         `json:"tax_category_code"`
	TaxPercent       decimal.Decimal     `json:"tax_percent"`
}

// Total returns net unit price * billed quantity. It is derived on every call,
// an absent net price counts as zero.
func (i TradeLineItem) Total() decimal.Decimal {
	return dec.LineTotal(i.NetUnitPrice, i.BilledQuantity)
}
