package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
)

func TestFixedClock(t *testing.T) {
	start := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	c := clock.NewFixed(start)

	assert.Equal(t, start, c.Now())
	c.Advance(time.Minute)
	assert.Equal(t, start.Add(time.Minute), c.Now())
}

func TestRealClockMoves(t *testing.T) {
	c := clock.New()
	before := time.Now()
	assert.False(t, c.Now().Before(before))
}
