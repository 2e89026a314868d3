package accounting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFormatCurrency(t *testing.T) {
	cases := map[string]string{
		"0":          "₹0.00",
		"5":          "₹5.00",
		"999.999":    "₹1,000.00",
		"123456.7":   "₹1,23,456.70",
		"1234567.89": "₹12,34,567.89",
		"-2500":      "-₹2,500.00",
		"-0.001":     "₹0.00",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatCurrency(dec(in)), in)
	}
	assert.Equal(t, "$1,00,000.00", FormatCurrencyIn(dec("100000"), "usd"))
	assert.Equal(t, "AED 10.00", FormatCurrencyIn(dec("10"), "AED"))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(decimal.Zero))
	assert.Equal(t, "12,34,567", FormatNumber(dec("1234567")))
	assert.Equal(t, "1,234.568", FormatNumber(dec("1234.5678")))
	assert.Equal(t, "-10,00,000.5", FormatNumber(dec("-1000000.50")))
}

func TestGroupIndian(t *testing.T) {
	assert.Equal(t, "999", GroupIndian("999"))
	assert.Equal(t, "1,000", GroupIndian("1000"))
	assert.Equal(t, "10,00,000", GroupIndian("1000000"))
	assert.Equal(t, "1,00,00,000", GroupIndian("10000000"))
}

func TestCalculateInvoiceTotals(t *testing.T) {
	assert.Equal(t, InvoiceTotals{Subtotal: "0.00", TaxAmount: "0.00", Total: "0.00"}, CalculateInvoiceTotals(nil))

	totals := CalculateInvoiceTotals([]InvoiceItem{
		{Amount: "100.50", TaxAmount: 18.09},
		{Amount: 200, TaxAmount: "36"},
		{Amount: "bad"},
	})
	assert.Equal(t, "300.50", totals.Subtotal)
	assert.Equal(t, "54.09", totals.TaxAmount)
	assert.Equal(t, "354.59", totals.Total)
}

func TestCalculateLineItem(t *testing.T) {
	got := CalculateLineItem("3", 49.99, "18")
	assert.Equal(t, LineItemAmounts{Amount: "149.97", TaxAmount: "26.99", Total: "176.96"}, got)
	assert.Equal(t, "0.00", CalculateLineItem(nil, 10, nil).Total)
}

func TestValidateJournalBalance(t *testing.T) {
	balanced := ValidateJournalBalance([]JournalLine{
		{DebitAmount: "500"},
		{CreditAmount: 499.995},
	})
	assert.True(t, balanced.IsBalanced)
	assert.Equal(t, "500.00", balanced.TotalDebit)

	off := ValidateJournalBalance([]JournalLine{{DebitAmount: 100}, {CreditAmount: 90}})
	assert.False(t, off.IsBalanced)
	assert.Equal(t, "10.00", off.Difference)

	assert.True(t, ValidateJournalBalance(nil).IsBalanced)
}

func TestInvoiceNumbersAndDates(t *testing.T) {
	now := time.Date(2024, time.February, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "INV-0007", GenerateInvoiceNumber("", 7, NumberSimple, now))
	assert.Equal(t, "RC-202402-0042", GenerateInvoiceNumber("RC", 42, NumberDate, now))
	assert.Equal(t, "INV-2024-12345", GenerateInvoiceNumber("INV", 12345, NumberYear, now))
	assert.Equal(t, "INV-0001", GenerateInvoiceNumber("INV", 1, "weird", now))

	assert.Equal(t, "2024-03-10", CalculateDueDate(now, DefaultPaymentTerms))

	past := now.AddDate(0, 0, -1)
	assert.False(t, IsInvoiceOverdue(past, "paid", now))
	assert.False(t, IsInvoiceOverdue(past, "cancelled", now))
	assert.True(t, IsInvoiceOverdue(past, "pending", now))
	assert.False(t, IsInvoiceOverdue(now.AddDate(0, 0, 1), "pending", now))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "bg-green-100 text-green-800", StatusColor("paid", StatusInvoice))
	assert.Equal(t, "bg-red-100 text-red-800", StatusColor("cancelled", StatusJournal))
	assert.Equal(t, defaultStatusColor, StatusColor("paid", StatusPayment))
	assert.Equal(t, "Liabilities", AccountTypeLabel("liability"))
	assert.Equal(t, "custom", AccountTypeLabel("custom"))

	assert.True(t, IsValidEmail("ops@site.in"))
	assert.False(t, IsValidEmail("ops@site"))
	assert.False(t, IsValidEmail("o ps@site.in"))

	assert.Equal(t, "2023-24", FinancialYear(time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-25", FinancialYear(time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2099-00", FinancialYear(time.Date(2099, time.May, 1, 0, 0, 0, 0, time.UTC)))

	assert.Equal(t, "50.00", Percentage(dec("1"), dec("2")))
	assert.Equal(t, "0.00", Percentage(dec("1"), decimal.Zero))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "05/03/2024", FormatDate(d, DateShort))
	assert.Equal(t, "5 March 2024", FormatDate(d, DateLong))
	assert.Equal(t, "5 March 2024 at 02:30 pm", FormatDate(d, DateFull))
	assert.Equal(t, "-", FormatDate(time.Time{}, DateShort))
}

func TestAmountInWords(t *testing.T) {
	cases := map[string]string{
		"0":          "zero",
		"0.75":       "zero",
		"7":          "seven",
		"13":         "thirteen",
		"40":         "forty",
		"99":         "ninety-nine",
		"100":        "one hundred",
		"101":        "one hundred one",
		"1000":       "one thousand",
		"1234.56":    "one thousand, two hundred thirty-four",
		"250000":     "two hundred fifty thousand",
		"1001000":    "one million, one thousand",
		"2000000002": "two billion, two",
		"-15":        "minus fifteen",
	}
	for in, want := range cases {
		assert.Equal(t, want, AmountInWords(dec(in)), in)
	}
}

func TestGroupByAndSortByKey(t *testing.T) {
	type row = map[string]any
	rows := []row{
		{"name": "b", "amount": 20.0, "floor": "Ground"},
		{"name": "a", "amount": 5.0, "floor": "First"},
		{"name": "c", "floor": "Ground"},
	}
	groups := GroupBy(rows, func(r row) string { return r["floor"].(string) })
	assert.Len(t, groups["Ground"], 2)
	assert.Len(t, groups["First"], 1)

	asc := SortByKey(rows, "amount", Asc)
	assert.Equal(t, "a", asc[0]["name"])
	assert.Equal(t, "c", asc[2]["name"])

	desc := SortByKey(rows, "amount", Desc)
	assert.Equal(t, "c", desc[0]["name"])
	assert.Equal(t, "b", desc[1]["name"])

	byName := SortByKey(rows, "name", Asc)
	assert.Equal(t, "a", byName[0]["name"])
	assert.Equal(t, "b", rows[0]["name"])
}
