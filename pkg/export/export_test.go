package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"
)

type row = map[string]any

func TestWriteCSV(t *testing.T) {
	rows := []row{
		{"name": "Pump, main", "qty": 2.0, "note": `say "hi"`},
		{"name": "Valve", "qty": 10.5, "note": nil},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows, nil))
	want := "name,note,qty\n" +
		"\"Pump, main\",say \"hi\",2\n" +
		"Valve,,10.5"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSVQuotesEscapedCommaValues(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []row{{"a": `x,"y"`}}, []string{"a"}))
	assert.Equal(t, "a\n\"x,\"\"y\"\"\"", buf.String())
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV[row](&buf, nil, nil))
	assert.Zero(t, buf.Len())
}

func TestWriteXLSX(t *testing.T) {
	rows := []row{
		{"id": 1.0, "asset_number": "A-01", "active": true},
		{"id": 2.0, "asset_number": "A-02", "active": false},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, "Assets", rows, Columns("id", "asset_number")))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)
	sheet := file.Sheets[0]
	assert.Equal(t, "Assets", sheet.Name)

	header, err := sheet.Cell(0, 1)
	require.NoError(t, err)
	assert.Equal(t, "Asset Number", header.String())

	value, err := sheet.Cell(2, 1)
	require.NoError(t, err)
	assert.Equal(t, "A-02", value.String())
	assert.Equal(t, 3, sheet.MaxRow)
}

func TestColumnsAndKeys(t *testing.T) {
	cols := Columns("check_in_time")
	assert.Equal(t, "Check In Time", cols[0].Title)
	assert.Equal(t, []string{"a", "b"}, KeysOf([]row{{"b": 1, "a": 2}}))
	assert.Nil(t, KeysOf[row](nil))
}
