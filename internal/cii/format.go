package cii

import (
	"time"

	"github.com/shopspring/decimal"

	dec "github.com/rezonia/zugferd/internal/decimal"
)

// DateFormat is the format attribute value paired with every FormatDate output (CCYYMMDD)
const DateFormat = "102"

// FormatCurrency renders an amount with exactly two fraction digits and a '.' separator
func FormatCurrency(v decimal.Decimal) string {
	return dec.Currency(v)
}

// FormatDate renders t as YYYYMMDD
func FormatDate(t time.Time) string {
	return t.Format("20060102")
}

// FormatPercent renders a tax rate as a whole number without fraction digits.
// A zero rate renders as the empty string.
func FormatPercent(v decimal.Decimal) string {
	return dec.Integer(v)
}

// FormatQuantity renders a quantity keeping its scale, without forced fraction digits
func FormatQuantity(v decimal.Decimal) string {
	return dec.Plain(v)
}

// FormatStreet joins street name and house number with a single space.
// The number segment is omitted when empty.
func FormatStreet(street, streetNo string) string {
	if streetNo == "" {
		return street
	}
	return street + " " + streetNo
}

// FormatBool renders an indicator as "true" or "false"
func FormatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
