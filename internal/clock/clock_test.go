package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystemClockUsesLocation(t *testing.T) {
	loc := time.FixedZone("AST", -4*3600)
	now := NewSystem(loc).Now()

	assert.Equal(t, loc, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Minute)
}

func TestSystemClockDefaultsToUTC(t *testing.T) {
	assert.Equal(t, time.UTC, NewSystem(nil).Now().Location())
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	c := NewFixed(at)

	assert.Equal(t, at, c.Now())
	assert.Equal(t, at, c.Now())
}
