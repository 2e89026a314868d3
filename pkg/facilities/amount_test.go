package facilities

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyDecodesNumbersAndStrings(t *testing.T) {
	cases := map[string]struct {
		raw   string
		want  string
		valid bool
	}{
		"number":  {raw: `1500.5`, want: "1500.5", valid: true},
		"string":  {raw: `" 1500.50 "`, want: "1500.5", valid: true},
		"null":    {raw: `null`, want: "0", valid: true},
		"blank":   {raw: `""`, want: "0", valid: true},
		"garbage": {raw: `"n/a"`, want: "0", valid: false},
		"object":  {raw: `{"v":1}`, want: "0", valid: false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var m Money
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &m))
			assert.Equal(t, tc.valid, m.Valid)
			assert.Equal(t, tc.want, m.Value.String())
		})
	}
}

func TestReceiptInvoiceToleratesStringAmount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/receipt_invoices/9.json", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":9,"receipt_number":"R-9","amount_received":"2500.75","customer_name":""}`))
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	require.NoError(t, err)
	invoice, err := client.ReceiptInvoice(context.Background(), "9")
	require.NoError(t, err)
	assert.Equal(t, "R-9", invoice.ReceiptNumber)
	assert.True(t, invoice.AmountReceived.Valid)
	assert.Equal(t, "2500.75", invoice.AmountReceived.Value.String())
	assert.Equal(t, "Customer", invoice.Customer())
}
