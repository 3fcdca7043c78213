package decimal

import (
	"github.com/shopspring/decimal"
)

// Zero is decimal zero
var Zero = decimal.Zero

// FromInt creates decimal from int
func FromInt(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// MustFromString parses decimal from string, panics on error
func MustFromString(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Present wraps a value as a set optional amount
func Present(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NewNullDecimal(d)
}

// Absent is the unset optional amount
var Absent = decimal.NullDecimal{}

// Currency renders an amount with exactly two fraction digits and a '.' separator.
// Rounds half away from zero.
func Currency(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Integer renders d rounded to a whole number without fraction digits.
// Zero renders as the empty string, like a "#" picture format.
func Integer(d decimal.Decimal) string {
	r := d.Round(0)
	if r.IsZero() {
		return ""
	}
	return r.String()
}

// Plain renders d with the scale it was given, so 1.000 stays 1.000
func Plain(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

// LineTotal computes price * quantity. An absent price counts as zero.
func LineTotal(price decimal.NullDecimal, quantity decimal.Decimal) decimal.Decimal {
	if !price.Valid {
		return Zero
	}
	return price.Decimal.Mul(quantity)
}
