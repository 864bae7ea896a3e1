package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOnly(t *testing.T) {
	in := time.Date(2026, time.March, 10, 23, 45, 12, 999, time.FixedZone("CST", -6*3600))
	got := DateOnly(in)

	// 23:45 CST is already March 11 in UTC
	assert.Equal(t, time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestToday(t *testing.T) {
	clk := FixedClock{At: time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)}
	assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), Today(clk))
}

func TestFixedClockIsStable(t *testing.T) {
	at := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	clk := FixedClock{At: at}
	assert.Equal(t, at, clk.Now())
	assert.Equal(t, at, clk.Now())
}
