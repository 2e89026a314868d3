package accounting

import (
	"fmt"
	"regexp"
	"time"
)

// StatusType selects a colour table.
type StatusType string

const (
	StatusInvoice StatusType = "invoice"
	StatusJournal StatusType = "journal"
	StatusPayment StatusType = "payment"
)

const defaultStatusColor = "bg-gray-100 text-gray-800"

var statusColors = map[StatusType]map[string]string{
	StatusInvoice: {
		"draft":          "bg-gray-100 text-gray-800",
		"pending":        "bg-yellow-100 text-yellow-800",
		"paid":           "bg-green-100 text-green-800",
		"partially_paid": "bg-blue-100 text-blue-800",
		"overdue":        "bg-red-100 text-red-800",
		"cancelled":      "bg-gray-100 text-gray-600",
	},
	StatusJournal: {
		"draft":     "bg-gray-100 text-gray-800",
		"posted":    "bg-green-100 text-green-800",
		"cancelled": "bg-red-100 text-red-800",
	},
	StatusPayment: {
		"completed": "bg-green-100 text-green-800",
		"pending":   "bg-yellow-100 text-yellow-800",
		"failed":    "bg-red-100 text-red-800",
	},
}

// StatusColor returns the badge classes for status within kind.
func StatusColor(status string, kind StatusType) string {
	if color, ok := statusColors[kind][status]; ok {
		return color
	}
	return defaultStatusColor
}

var accountTypes = map[string]string{
	"asset":     "Assets",
	"liability": "Liabilities",
	"equity":    "Equity",
	"revenue":   "Revenue",
	"expense":   "Expenses",
}

// AccountTypeLabel returns the display label, or t itself when unknown.
func AccountTypeLabel(t string) string {
	if label, ok := accountTypes[t]; ok {
		return label
	}
	return t
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail performs a loose shape check.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// FinancialYear returns the April-to-March year containing t, e.g. 2024-25.
func FinancialYear(t time.Time) string {
	year := t.Year()
	if t.Month() < time.April {
		year--
	}
	return fmt.Sprintf("%d-%02d", year, (year+1)%100)
}

// DateFormat selects a FormatDate layout.
type DateFormat string

const (
	DateShort DateFormat = "short"
	DateLong  DateFormat = "long"
	DateFull  DateFormat = "full"
)

// FormatDate renders t the en-IN way: 05/03/2024, 5 March 2024 or
// 5 March 2024 at 02:30 pm. The zero time renders as "-".
func FormatDate(t time.Time, format DateFormat) string {
	if t.IsZero() {
		return "-"
	}
	switch format {
	case DateLong:
		return t.Format("2 January 2006")
	case DateFull:
		return t.Format("2 January 2006 at 03:04 pm")
	default:
		return t.Format("02/01/2006")
	}
}
