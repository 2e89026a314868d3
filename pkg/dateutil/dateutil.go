// Package dateutil formats backend timestamps for display and builds the
// date strings the backend expects.
package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

// IST is the zone every display helper renders in.
var IST = mustLoad("Asia/Kolkata")

// NoData is shown for blank shift times.
const NoData = "No Data"

var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateTime,
	"2006-01-02 15:04",
	time.DateOnly,
}

// ErrEmpty is returned by Parse for blank input.
var ErrEmpty = errors.New("dateutil: empty date")

// Parse reads the timestamp shapes the backend emits. Values without an
// offset are taken as IST.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrEmpty
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, IST); err == nil {
			return t.In(IST), nil
		}
	}
	return time.Time{}, fmt.Errorf("dateutil: unrecognised date %q", s)
}

func format(s, layout, fallback string) string {
	t, err := Parse(s)
	if err != nil {
		return fallback
	}
	return t.Format(layout)
}

// SendDateFormat returns YYYY-MM-DD, or "" for blank or invalid input.
func SendDateFormat(s string) string {
	return format(s, time.DateOnly, "")
}

// SendDueDateFormat returns YYYY-MM-DD HH:MM:00.
func SendDueDateFormat(s string) string {
	return format(s, "2006-01-02 15:04:00", "")
}

// FormatDateTime returns DD/MM/YYYY h:MM AM.
func FormatDateTime(s string) string {
	return format(s, "02/01/2006 3:04 PM", "")
}

// FormatLong returns e.g. "March 5, 2024 at 2:30 PM".
func FormatLong(s string) string {
	return format(s, "January 2, 2006 at 3:04 PM", "")
}

// DateFormat returns D/M/YYYY.
func DateFormat(s string) string {
	return format(s, "2/1/2006", "")
}

// DateFormatSTD returns DD/MM/YY.
func DateFormatSTD(s string) string {
	return format(s, "02/01/06", "")
}

// DateTimeFormat returns D/M/YYYY, h:MM:SS pm, or a single space for blank or
// invalid input so table cells keep their height.
func DateTimeFormat(s string) string {
	return format(s, "2/1/2006, 3:04:05 pm", " ")
}

// ShowDueDate drops a trailing "+hh:mm" offset and renders like DateTimeFormat.
func ShowDueDate(s string) string {
	if s == "" {
		return ""
	}
	head, _, _ := strings.Cut(s, "+")
	return format(head, "2/1/2006, 3:04:05 pm", "")
}

// FormatTime returns h:MM AM.
func FormatTime(s string) string {
	return format(s, "3:04 PM", "")
}

// ConvertToIST returns the IST wall clock as hh:mm am.
func ConvertToIST(s string) string {
	return format(s, "03:04 pm", "")
}

// ConvertTo12HourFormat turns "14:05" into "2:05 PM". Blank input gives "".
func ConvertTo12HourFormat(hhmm string) string {
	if hhmm == "" {
		return ""
	}
	hour, minute, _ := strings.Cut(hhmm, ":")
	h, _ := strconv.Atoi(hour)
	return twelveHour(h, minute)
}

// ConvertTo12HrFormat is ConvertTo12HourFormat for shift times: blank, "__"
// or colon-less input yields NoData.
func ConvertTo12HrFormat(hhmm string) string {
	if strings.TrimSpace(hhmm) == "" || hhmm == "__" {
		return NoData
	}
	parts := strings.Split(hhmm, ":")
	if len(parts) < 2 {
		return NoData
	}
	h, _ := strconv.Atoi(parts[0])
	return twelveHour(h, parts[1])
}

// FormatShiftTime renders "start - end".
func FormatShiftTime(start, end string) string {
	return ConvertTo12HrFormat(start) + " - " + ConvertTo12HrFormat(end)
}

func twelveHour(h int, minute string) string {
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%s %s", h, minute, period)
}

// MonthStart returns the first day of t's month at midnight.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}
