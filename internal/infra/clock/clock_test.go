package clock

import (
	"testing"
	"time"

	"spotlight/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemClock_NowInRotationZone(t *testing.T) {
	c := NewSystemClock()

	now := c.Now()
	assert.Equal(t, entity.DayTimeZone, now.Location())
}

func TestSystemClock_TodayMatchesNow(t *testing.T) {
	c := NewSystemClock()

	day := c.Today()
	parsed, err := day.Time()
	require.NoError(t, err)

	// The key derived from Now must denote the same calendar day.
	now := c.Now()
	assert.Equal(t, now.Year(), parsed.Year())
	assert.Equal(t, now.Month(), parsed.Month())

	// Now may have ticked past midnight between the two reads; accept either
	// the same day or the immediately following one.
	if now.Day() != parsed.Day() {
		next, err := day.Next()
		require.NoError(t, err)
		assert.Equal(t, entity.DayKeyFromTime(now), next)
	}
}

func TestSystemClock_TodayRoundTrips(t *testing.T) {
	c := NewSystemClock()

	day := c.Today()
	_, err := entity.ParseDayKey(day.String())
	require.NoError(t, err)
}

func TestDayKeyFromTime_FixedInstant(t *testing.T) {
	// 2026-03-05 23:30 UTC is still 2026-03-05 15:30 in the rotation zone.
	instant := time.Date(2026, 3, 5, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, entity.DayKey("3-5-2026"), entity.DayKeyFromTime(instant))

	// 2026-03-06 02:00 UTC is 2026-03-05 18:00 in the rotation zone.
	instant = time.Date(2026, 3, 6, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, entity.DayKey("3-5-2026"), entity.DayKeyFromTime(instant))
}
