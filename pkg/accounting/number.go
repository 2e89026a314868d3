package accounting

import (
	"strings"

	"github.com/shopspring/decimal"
)

var currencySymbols = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// FormatCurrency renders amount as Indian rupees with en-IN grouping and two
// decimals, e.g. ₹1,23,456.70.
func FormatCurrency(amount decimal.Decimal) string {
	return FormatCurrencyIn(amount, "INR")
}

// FormatCurrencyIn renders amount in currency using en-IN grouping. Unknown
// codes are written as a prefix followed by a space.
func FormatCurrencyIn(amount decimal.Decimal, currency string) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currency + " "
	}
	sign := ""
	if amount.Round(2).IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}
	return sign + symbol + groupFixed(amount.StringFixed(2))
}

// FormatNumber groups n the en-IN way (last three digits, then pairs) with
// at most three fraction digits and no trailing zeros.
func FormatNumber(n decimal.Decimal) string {
	n = n.Round(3)
	sign := ""
	if n.IsNegative() {
		sign = "-"
		n = n.Abs()
	}
	return sign + groupFixed(n.String())
}

// groupFixed groups the integer part of an unsigned decimal string.
func groupFixed(s string) string {
	intPart, frac, hasFrac := strings.Cut(s, ".")
	out := GroupIndian(intPart)
	if hasFrac {
		out += "." + frac
	}
	return out
}

// GroupIndian inserts en-IN separators into a string of digits:
// 1234567 becomes 12,34,567.
func GroupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(append(parts, tail), ",")
}

// Percentage returns value/total*100 with two decimals, "0.00" when total is zero.
func Percentage(value, total decimal.Decimal) string {
	if total.IsZero() {
		return "0.00"
	}
	return value.Div(total).Mul(decimal.NewFromInt(100)).StringFixed(2)
}

// Amount parses loosely typed amounts: numbers, numeric strings and
// decimals. Blank or unparsable input is zero.
func Amount(v any) decimal.Decimal {
	switch n := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return n
	case float64:
		return decimal.NewFromFloat(n)
	case float32:
		return decimal.NewFromFloat32(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}
