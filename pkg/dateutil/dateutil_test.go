package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	got, err := Parse("2024-03-05T09:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 14, got.Hour())
	assert.Equal(t, 30, got.Minute())

	got, err = Parse("2024-03-05 14:30:00")
	require.NoError(t, err)
	assert.Equal(t, 14, got.Hour())

	_, err = Parse("  ")
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = Parse("yesterday")
	assert.Error(t, err)
}

func TestSendDateFormatRoundTrips(t *testing.T) {
	for _, in := range []string{"2024-02-29", "2024-12-31T23:10:00+05:30", "2023-01-01 00:00:00"} {
		out := SendDateFormat(in)
		parsed, err := time.Parse(time.DateOnly, out)
		require.NoError(t, err, in)
		want, err := Parse(in)
		require.NoError(t, err)
		assert.Equal(t, want.Year(), parsed.Year())
		assert.Equal(t, want.Month(), parsed.Month())
		assert.Equal(t, want.Day(), parsed.Day())
	}
	assert.Equal(t, "", SendDateFormat(""))
	assert.Equal(t, "", SendDateFormat("garbage"))
}

func TestDisplayFormats(t *testing.T) {
	in := "2024-03-05T14:07:09+05:30"
	assert.Equal(t, "2024-03-05 14:07:00", SendDueDateFormat(in))
	assert.Equal(t, "05/03/2024 2:07 PM", FormatDateTime(in))
	assert.Equal(t, "March 5, 2024 at 2:07 PM", FormatLong(in))
	assert.Equal(t, "5/3/2024", DateFormat(in))
	assert.Equal(t, "05/03/24", DateFormatSTD(in))
	assert.Equal(t, "5/3/2024, 2:07:09 pm", DateTimeFormat(in))
	assert.Equal(t, " ", DateTimeFormat(""))
	assert.Equal(t, " ", DateTimeFormat("nope"))
	assert.Equal(t, "5/3/2024, 2:07:09 pm", ShowDueDate(in))
	assert.Equal(t, "2:07 PM", FormatTime(in))
	assert.Equal(t, "", FormatTime(""))
	assert.Equal(t, "02:07 pm", ConvertToIST(in))
	assert.Equal(t, "02:07 pm", ConvertToIST("2024-03-05T08:37:09Z"))
}

func TestTwelveHourConversions(t *testing.T) {
	assert.Equal(t, "12:05 AM", ConvertTo12HourFormat("00:05"))
	assert.Equal(t, "12:30 PM", ConvertTo12HourFormat("12:30"))
	assert.Equal(t, "11:59 PM", ConvertTo12HourFormat("23:59"))
	assert.Equal(t, "", ConvertTo12HourFormat(""))

	assert.Equal(t, NoData, ConvertTo12HrFormat(""))
	assert.Equal(t, NoData, ConvertTo12HrFormat("__"))
	assert.Equal(t, NoData, ConvertTo12HrFormat("9"))
	assert.Equal(t, "9:00 AM - 6:30 PM", FormatShiftTime("09:00", "18:30"))
}

func TestMonthStart(t *testing.T) {
	d := time.Date(2024, time.July, 19, 15, 0, 0, 0, IST)
	assert.Equal(t, time.Date(2024, time.July, 1, 0, 0, 0, 0, IST), MonthStart(d))
}
