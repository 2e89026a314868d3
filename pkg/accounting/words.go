package accounting

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	smallWords = []string{
		"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten",
		"eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen",
		"eighteen", "nineteen",
	}
	tensWords = []string{
		"zero", "ten", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
	}
	scales = []struct {
		value int64
		name  string
	}{
		{1_000_000_000_000_000, "quadrillion"},
		{1_000_000_000_000, "trillion"},
		{1_000_000_000, "billion"},
		{1_000_000, "million"},
		{1_000, "thousand"},
	}
)

// AmountInWords spells the integer part of amount in lowercase English:
// 1234.56 is "one thousand, two hundred thirty-four". The fraction is
// dropped.
func AmountInWords(amount decimal.Decimal) string {
	n := amount.IntPart()
	if n == 0 {
		return "zero"
	}
	prefix := ""
	if n < 0 {
		prefix = "minus "
		n = -n
	}
	return prefix + strings.TrimSuffix(strings.Join(spell(n, nil), " "), ",")
}

func spell(n int64, words []string) []string {
	if n == 0 {
		return words
	}
	var word string
	var rest int64
	switch {
	case n < 20:
		word = smallWords[n]
	case n < 100:
		word = tensWords[n/10]
		if r := n % 10; r != 0 {
			word += "-" + smallWords[r]
		}
	case n < 1000:
		word = strings.Join(spell(n/100, nil), " ") + " hundred"
		rest = n % 100
	default:
		for _, scale := range scales {
			if n >= scale.value {
				word = strings.Join(spell(n/scale.value, nil), " ") + " " + scale.name + ","
				rest = n % scale.value
				break
			}
		}
	}
	return spell(rest, append(words, word))
}
