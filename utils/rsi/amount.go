package rsi

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// AmountState tells whether an Amount carries a value.
type AmountState int

const (
	AmountAbsent AmountState = iota
	AmountValue
	AmountMalformed
)

// Amount is the outcome of parsing a locale formatted number.
type Amount struct {
	State AmountState
	Value float64
	Raw   string
}

var decimalNumber = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?$`)

// ParseAmount parses a French formatted number such as "3 640", "1.234,56 €"
// or "70,9". Spaces of any kind and the euro sign are dropped, every dot is a
// thousands separator and the first comma is the decimal separator.
//
// A dot is never read as a decimal point, so "1234.56" parses as 123456.
func ParseAmount(s string) Amount {
	if s == "" {
		return Amount{State: AmountAbsent}
	}

	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '€' {
			return -1
		}
		return r
	}, s)
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.Replace(cleaned, ",", ".", 1)

	if !decimalNumber.MatchString(cleaned) {
		return Amount{State: AmountMalformed, Raw: s}
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return Amount{State: AmountMalformed, Raw: s}
	}
	return Amount{State: AmountValue, Value: v, Raw: s}
}

// Float returns the value and whether there is one.
func (a Amount) Float() (float64, bool) {
	return a.Value, a.State == AmountValue
}

// OrZero returns the value, or 0 when the amount is absent or malformed.
func (a Amount) OrZero() float64 {
	if a.State != AmountValue {
		return 0
	}
	return a.Value
}

// Ptr returns a pointer to the value, or nil when there is none.
func (a Amount) Ptr() *float64 {
	if a.State != AmountValue {
		return nil
	}
	v := a.Value
	return &v
}
