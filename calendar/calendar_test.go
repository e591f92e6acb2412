package calendar_test

import (
	"testing"

	"github.com/katalvlaran/qimen/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompute_KnownMoment pins the Four Pillars and solar term for
// 2025-12-21 20:00 local: the winter solstice falls late that evening, so
// the governing term is still 大雪.
func TestCompute_KnownMoment(t *testing.T) {
	p, err := calendar.Compute(2025, 12, 21, 20)
	require.NoError(t, err)

	assert.Equal(t, "乙巳", p.Year.String(), "year pillar")
	assert.Equal(t, "戊子", p.Month.String(), "month pillar")
	assert.Equal(t, "甲子", p.Day.String(), "day pillar")
	assert.Equal(t, "甲戌", p.Hour.String(), "hour pillar")
	assert.Equal(t, "大雪", p.Term, "solar term")
}

// TestCompute_DoubleHourBoundary verifies the 2-hour period edges: 19:00 and
// 20:00 share the 戌 hour pillar, 21:00 moves one branch to 亥.
func TestCompute_DoubleHourBoundary(t *testing.T) {
	at19, err := calendar.Compute(2025, 12, 21, 19)
	require.NoError(t, err)
	at20, err := calendar.Compute(2025, 12, 21, 20)
	require.NoError(t, err)
	at21, err := calendar.Compute(2025, 12, 21, 21)
	require.NoError(t, err)

	assert.Equal(t, at20.Hour, at19.Hour, "19:00 and 20:00 share one double-hour")
	assert.Equal(t, at20.Hour.Branch.Add(1), at21.Hour.Branch,
		"21:00 advances the hour branch by exactly one")
	assert.NotEqual(t, at20.Hour, at21.Hour)
}

// TestCompute_Deterministic calls the adapter twice with identical input.
func TestCompute_Deterministic(t *testing.T) {
	a, err := calendar.Compute(2024, 6, 6, 6)
	require.NoError(t, err)
	b, err := calendar.Compute(2024, 6, 6, 6)
	require.NoError(t, err)

	assert.Equal(t, a, b, "identical input must yield identical pillars")
}

// TestCompute_BadInput rejects malformed civil input before the lunisolar
// library is involved.
func TestCompute_BadInput(t *testing.T) {
	cases := []struct {
		name                   string
		year, month, day, hour int
	}{
		{"month 13", 2025, 13, 1, 0},
		{"month 0", 2025, 0, 1, 0},
		{"day 32", 2025, 1, 32, 0},
		{"day 0", 2025, 1, 0, 0},
		{"feb 30", 2025, 2, 30, 0},
		{"feb 29 non-leap", 2025, 2, 29, 0},
		{"hour 24", 2025, 1, 1, 24},
		{"hour -1", 2025, 1, 1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := calendar.Compute(tc.year, tc.month, tc.day, tc.hour)
			assert.ErrorIs(t, err, calendar.ErrBadDate)
		})
	}

	// Leap day itself is fine.
	_, err := calendar.Compute(2024, 2, 29, 12)
	assert.NoError(t, err)
}
