package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// eventDateLayout is the only accepted wire format for calendar dates.
const eventDateLayout = "2006-01-02"

// ParseEventDate parses a calendar date in strict YYYY-MM-DD form.
func ParseEventDate(value string) (time.Time, error) {
	return time.Parse(eventDateLayout, value)
}

// FormatEventDate renders a calendar date in YYYY-MM-DD form.
func FormatEventDate(t time.Time) string {
	return t.Format(eventDateLayout)
}

// ParseDuration parses a duration string, returning the default on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}
