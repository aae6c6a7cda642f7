package clock_test

import (
	"testing"
	"time"

	"hotel/shared/clock"

	"github.com/stretchr/testify/assert"
)

func TestFixed(t *testing.T) {
	at := time.Date(2025, 7, 1, 16, 45, 0, 0, time.UTC)
	c := clock.Fixed(at)

	assert.Equal(t, at, c.Now())
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), clock.Today(c))
}

func TestNew(t *testing.T) {
	before := time.Now().Add(-time.Second)

	assert.True(t, clock.New().Now().After(before))
}
