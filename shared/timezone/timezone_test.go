package timezone_test

import (
	"hotel/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNow(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	assert.Equal(t, timezone.GetLocation(), timezone.Now().Location())
}

func TestToday(t *testing.T) {
	today := timezone.Today()

	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, 0, today.Minute())
	assert.False(t, today.After(timezone.Now()))
}

func TestParseDate(t *testing.T) {
	parsed, err := timezone.ParseDate("2025-07-01")

	assert.NoError(t, err)
	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, time.July, parsed.Month())
	assert.Equal(t, 1, parsed.Day())
	assert.Equal(t, "2025-07-01", timezone.FormatDate(parsed))
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := timezone.ParseDate("07/01/2025")

	assert.Error(t, err)
}
