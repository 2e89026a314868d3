package textutil

import (
	"strings"
	"unicode/utf8"

	"github.com/ettle/strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalize uppercases the first letter and leaves the rest untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Upper(language.Und).String(string(r)) + s[size:]
}

// Truncate cuts s to n runes and appends "..." when it was longer.
func Truncate(s string, n int) string {
	if n < 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "..."
}

// Humanize turns keys such as "asset_number" or "checkInTime" into
// "Asset Number" and "Check In Time".
func Humanize(key string) string {
	words := strings.ReplaceAll(strcase.ToSnake(key), "_", " ")
	return cases.Title(language.English).String(words)
}
