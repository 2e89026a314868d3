package facilities

import (
	"bytes"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// Money is a lenient JSON amount. The backend sends numbers, numeric strings
// or null; anything else decodes with Valid false instead of failing the
// surrounding record.
type Money struct {
	Value decimal.Decimal
	Valid bool
}

// NewMoney wraps a known amount.
func NewMoney(v decimal.Decimal) Money {
	return Money{Value: v, Valid: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		*m = NewMoney(decimal.Zero)
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*m = Money{}
			return nil
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*m = NewMoney(decimal.Zero)
			return nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			*m = Money{}
			return nil
		}
		*m = NewMoney(d)
		return nil
	default:
		d, err := decimal.NewFromString(string(data))
		if err != nil {
			*m = Money{}
			return nil
		}
		*m = NewMoney(d)
		return nil
	}
}

// MarshalJSON writes the amount as a JSON number, or null when invalid.
func (m Money) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return []byte("null"), nil
	}
	return []byte(m.Value.String()), nil
}
