package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Hello world", Capitalize("hello world"))
	assert.Equal(t, "ÉCole", Capitalize("éCole"))
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "1st", Capitalize("1st"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exact", Truncate("exact", 5))
	assert.Equal(t, "Lobb...", Truncate("Lobby cleaning", 4))
	assert.Equal(t, "चाय...", Truncate("चायपत्ती", 3))
	assert.Equal(t, "", Truncate("", 3))
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "Asset Number", Humanize("asset_number"))
	assert.Equal(t, "Check In Time", Humanize("checkInTime"))
	assert.Equal(t, "Id", Humanize("id"))
}
