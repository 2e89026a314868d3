package accounting

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// InvoiceItem is a line with pre-computed amount and tax. Fields accept
// anything Amount understands.
type InvoiceItem struct {
	Amount    any `json:"amount"`
	TaxAmount any `json:"tax_amount"`
}

// InvoiceTotals are two-decimal strings.
type InvoiceTotals struct {
	Subtotal  string `json:"subtotal"`
	TaxAmount string `json:"tax_amount"`
	Total     string `json:"total"`
}

// CalculateInvoiceTotals sums amounts and taxes. No items gives all zeros.
func CalculateInvoiceTotals(items []InvoiceItem) InvoiceTotals {
	subtotal, tax := decimal.Zero, decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(Amount(item.Amount))
		tax = tax.Add(Amount(item.TaxAmount))
	}
	return InvoiceTotals{
		Subtotal:  subtotal.StringFixed(2),
		TaxAmount: tax.StringFixed(2),
		Total:     subtotal.Add(tax).StringFixed(2),
	}
}

// LineItemAmounts is the result of pricing one line.
type LineItemAmounts struct {
	Amount    string `json:"amount"`
	TaxAmount string `json:"tax_amount"`
	Total     string `json:"total"`
}

// CalculateLineItem prices quantity*unitPrice plus taxRate percent.
func CalculateLineItem(quantity, unitPrice, taxRate any) LineItemAmounts {
	amount := Amount(quantity).Mul(Amount(unitPrice))
	tax := amount.Mul(Amount(taxRate)).Div(hundred)
	return LineItemAmounts{
		Amount:    amount.StringFixed(2),
		TaxAmount: tax.StringFixed(2),
		Total:     amount.Add(tax).StringFixed(2),
	}
}

// JournalLine is one debit/credit line.
type JournalLine struct {
	DebitAmount  any `json:"debit_amount"`
	CreditAmount any `json:"credit_amount"`
}

// JournalBalance summarises a journal entry.
type JournalBalance struct {
	TotalDebit  string `json:"total_debit"`
	TotalCredit string `json:"total_credit"`
	Difference  string `json:"difference"`
	IsBalanced  bool   `json:"is_balanced"`
}

var balanceTolerance = decimal.New(1, -2)

// ValidateJournalBalance totals the lines; the entry balances when debits
// and credits differ by less than 0.01.
func ValidateJournalBalance(lines []JournalLine) JournalBalance {
	debit, credit := decimal.Zero, decimal.Zero
	for _, line := range lines {
		debit = debit.Add(Amount(line.DebitAmount))
		credit = credit.Add(Amount(line.CreditAmount))
	}
	diff := debit.Sub(credit)
	return JournalBalance{
		TotalDebit:  debit.StringFixed(2),
		TotalCredit: credit.StringFixed(2),
		Difference:  diff.StringFixed(2),
		IsBalanced:  diff.Abs().LessThan(balanceTolerance),
	}
}

// NumberFormat selects the invoice number layout.
type NumberFormat string

const (
	NumberSimple NumberFormat = "simple"
	NumberDate   NumberFormat = "date"
	NumberYear   NumberFormat = "year"
)

// GenerateInvoiceNumber builds PREFIX-0001, PREFIX-YYYYMM-0001 or
// PREFIX-YYYY-0001. Unknown formats fall back to simple.
func GenerateInvoiceNumber(prefix string, sequence int, format NumberFormat, now time.Time) string {
	if prefix == "" {
		prefix = "INV"
	}
	seq := fmt.Sprintf("%04d", sequence)
	switch format {
	case NumberDate:
		return fmt.Sprintf("%s-%s-%s", prefix, now.Format("200601"), seq)
	case NumberYear:
		return fmt.Sprintf("%s-%d-%s", prefix, now.Year(), seq)
	default:
		return prefix + "-" + seq
	}
}

// DefaultPaymentTerms is the due-date offset in days.
const DefaultPaymentTerms = 30

// CalculateDueDate adds paymentTerms days and returns YYYY-MM-DD.
func CalculateDueDate(invoiceDate time.Time, paymentTerms int) string {
	return invoiceDate.AddDate(0, 0, paymentTerms).Format(time.DateOnly)
}

// IsInvoiceOverdue reports whether due is before now. Paid and cancelled
// invoices are never overdue.
func IsInvoiceOverdue(due time.Time, status string, now time.Time) bool {
	if status == "paid" || status == "cancelled" {
		return false
	}
	return due.Before(now)
}
