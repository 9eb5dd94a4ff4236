package timesheet

import (
	"math/rand"
	"testing"
	"time"

	"github.com/alexanderramin/crewclock/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWeek_StartsOnMostRecentSunday(t *testing.T) {
	loc := pacific(t)

	cases := []struct {
		now  time.Time
		want time.Time
	}{
		{at(loc, 8, 12, 0), at(loc, 5, 0, 0)},  // Wednesday
		{at(loc, 5, 0, 0), at(loc, 5, 0, 0)},   // Sunday midnight
		{at(loc, 5, 23, 59), at(loc, 5, 0, 0)}, // Sunday night
		{at(loc, 11, 23, 59), at(loc, 5, 0, 0)},
		{at(loc, 12, 0, 1), at(loc, 12, 0, 0)},
		{time.Date(2025, 10, 1, 8, 0, 0, 0, loc), time.Date(2025, 9, 28, 0, 0, 0, 0, loc)},
	}
	for _, c := range cases {
		w := ResolveWeek(c.now, loc, nil)
		assert.Equal(t, c.want, w.Start, "now %s", c.now)
		assert.Equal(t, time.Sunday, w.Start.Weekday())
	}
}

func TestResolveWeek_UsesCrewZoneForToday(t *testing.T) {
	loc := pacific(t)
	// Sunday 02:00 UTC is still Saturday evening in Los Angeles.
	now := time.Date(2025, 10, 12, 2, 0, 0, 0, time.UTC)
	w := ResolveWeek(now, loc, nil)
	assert.Equal(t, at(loc, 5, 0, 0), w.Start)
}

func TestResolveWeek_EndIsSaturdayEndOfDay(t *testing.T) {
	loc := pacific(t)
	w := octWeek(loc)
	assert.Equal(t, time.Date(2025, 10, 11, 23, 59, 59, 999_000_000, loc), w.End)
	assert.Equal(t, time.Saturday, w.End.Weekday())
}

func TestResolveWeek_WindowLengthProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	wantLen := 6*24*time.Hour + 23*time.Hour + 59*time.Minute + 59*time.Second + 999*time.Millisecond

	for trial := 0; trial < 500; trial++ {
		now := base.Add(time.Duration(rng.Int63n(int64(6 * 365 * 24 * time.Hour)))).Truncate(time.Second)
		w := ResolveWeek(now, time.UTC, nil)
		assert.Equal(t, wantLen, w.End.Sub(w.Start), "trial %d now %s", trial, now)
		assert.True(t, w.Contains(now), "trial %d: window must contain now", trial)
	}
}

func TestResolveWeek_WallClockLengthAcrossDST(t *testing.T) {
	loc := pacific(t)
	// Week of 2025-11-02 contains the fall-back transition.
	w := ResolveWeek(time.Date(2025, 11, 4, 9, 0, 0, 0, loc), loc, nil)
	assert.Equal(t, time.Date(2025, 11, 2, 0, 0, 0, 0, loc), w.Start)
	assert.Equal(t, time.Date(2025, 11, 8, 23, 59, 59, 999_000_000, loc), w.End)

	wallClock := 6*24*time.Hour + 23*time.Hour + 59*time.Minute + 59*time.Second + 999*time.Millisecond
	assert.Equal(t, wallClock+time.Hour, w.End.Sub(w.Start))
}

func TestResolveWeek_OverrideIsUsedVerbatim(t *testing.T) {
	loc := pacific(t)
	tuesday, err := ParseWeekStart("2025-10-07", loc)
	require.NoError(t, err)

	w := ResolveWeek(at(loc, 20, 9, 0), loc, tuesday)
	assert.Equal(t, at(loc, 7, 0, 0), w.Start)
	assert.Equal(t, time.Tuesday, w.Start.Weekday())
	assert.Equal(t, time.Date(2025, 10, 13, 23, 59, 59, 999_000_000, loc), w.End)
}

func TestParseWeekStart(t *testing.T) {
	loc := pacific(t)

	got, err := ParseWeekStart("", loc)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseWeekStart("10/05/2025", loc)
	assert.ErrorIs(t, err, domain.ErrInvalidWeekStart)

	got, err = ParseWeekStart("2025-10-05", loc)
	require.NoError(t, err)
	assert.Equal(t, at(loc, 5, 0, 0), *got)
}
