package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventDate(t *testing.T) {
	parsed, err := ParseEventDate("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), parsed)
}

func TestParseEventDateRejectsOtherFormats(t *testing.T) {
	for _, value := range []string{"15/03/2026", "2026-3-15", "2026-03-15T00:00:00Z", "2026-13-01", ""} {
		_, err := ParseEventDate(value)
		assert.Error(t, err, "value %q", value)
	}
}

func TestFormatEventDate(t *testing.T) {
	formatted := FormatEventDate(time.Date(2026, 3, 15, 13, 45, 0, 0, time.UTC))
	assert.Equal(t, "2026-03-15", formatted)
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Minute, ParseDuration("2m", time.Second))
	assert.Equal(t, time.Second, ParseDuration("nonsense", time.Second))
	assert.Equal(t, time.Second, ParseDuration("", time.Second))
}
