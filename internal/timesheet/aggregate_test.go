package timesheet

import (
	"testing"

	"github.com/alexanderramin/crewclock/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailySummaries_SumsAndSorts(t *testing.T) {
	loc := pacific(t)
	w := octWeek(loc)

	rec := ReconcileAll([]domain.Event{
		punch("Tony", domain.ActionIn, at(loc, 8, 9, 0)),
		punch("Tony", domain.ActionOut, at(loc, 8, 12, 0)),
		punch("Tony", domain.ActionIn, at(loc, 8, 13, 0)),
		punch("Tony", domain.ActionOut, at(loc, 8, 14, 30)),
		punch("Hector", domain.ActionIn, at(loc, 8, 7, 0)),
		punch("Hector", domain.ActionOut, at(loc, 8, 8, 0)),
		punch("Hector", domain.ActionIn, at(loc, 10, 7, 0)),
		punch("Hector", domain.ActionOut, at(loc, 10, 7, 45)),
	}, w, "", "")

	daily := DailySummaries(rec.Sessions)
	require.Len(t, daily, 3)

	assert.Equal(t, "Hector", daily[0].Worker)
	assert.Equal(t, at(loc, 10, 0, 0), daily[0].Date)
	assert.Equal(t, "0h 45m", daily[0].Formatted)

	assert.Equal(t, "Tony", daily[1].Worker)
	assert.Equal(t, 270.0, daily[1].Minutes)
	assert.Equal(t, "4h 30m", daily[1].Formatted)

	assert.Equal(t, "Hector", daily[2].Worker)
	assert.Equal(t, at(loc, 8, 0, 0), daily[2].Date)
}

func TestDailySummaries_Empty(t *testing.T) {
	daily := DailySummaries(nil)
	assert.NotNil(t, daily)
	assert.Empty(t, daily)
}

func TestWeeklySummaries_OneEntryPerRosterMember(t *testing.T) {
	loc := pacific(t)
	roster := testRoster()

	sessions := Reconcile([]domain.Event{
		punch("Hector", domain.ActionIn, at(loc, 6, 9, 0)),
		punch("Hector", domain.ActionOut, at(loc, 6, 10, 15)),
	}, octWeek(loc), "").Sessions
	sessions = append(sessions, domain.Session{Worker: "Stranger", Minutes: 600})

	weekly := WeeklySummaries(sessions, roster)
	require.Len(t, weekly, len(roster.Members))

	names := make([]string, len(weekly))
	for i, ws := range weekly {
		names[i] = ws.Worker
	}
	assert.Equal(t, []string{"Tony", "Hector", "Dad", "Admin"}, names)
	assert.Equal(t, "0h 0m", weekly[0].Formatted)
	assert.Equal(t, 75.0, weekly[1].Minutes)
	assert.Equal(t, "1h 15m", weekly[1].Formatted)
}

func TestTotalHours_OpenSessionCountsUntilNow(t *testing.T) {
	loc := pacific(t)
	w := octWeek(loc)

	events := []domain.Event{punch("Tony", domain.ActionIn, at(loc, 8, 9, 0))}

	assert.Empty(t, Reconcile(events, w, "").Sessions)
	totals := TotalHours(events, w, at(loc, 8, 9, 30))
	assert.Equal(t, 0.5, totals["Tony"])
}

func TestTotalHours_OpenSessionNotCappedAtWindowEnd(t *testing.T) {
	loc := pacific(t)
	w := octWeek(loc)

	events := []domain.Event{punch("Tony", domain.ActionIn, at(loc, 11, 9, 0))}
	totals := TotalHours(events, w, at(loc, 15, 9, 0))
	assert.Equal(t, 96.0, totals["Tony"])
}

func TestTotalHours_NowBeforeOpenPunch(t *testing.T) {
	loc := pacific(t)
	w := octWeek(loc)

	events := []domain.Event{punch("Tony", domain.ActionIn, at(loc, 9, 9, 0))}
	totals := TotalHours(events, w, at(loc, 8, 9, 0))
	assert.Equal(t, -24.0, totals["Tony"])
}

func TestTotalHours_IgnoresProjectAndRoundsToCents(t *testing.T) {
	loc := pacific(t)
	w := octWeek(loc)

	events := []domain.Event{
		onProject(punch("Tony", domain.ActionIn, at(loc, 8, 9, 0)), "Garage Conversion"),
		onProject(punch("Tony", domain.ActionOut, at(loc, 8, 9, 20)), "Garage Conversion"),
		onProject(punch("Dad", domain.ActionIn, at(loc, 8, 9, 0)), "Dump Run"),
		onProject(punch("Dad", domain.ActionOut, at(loc, 8, 10, 0)), "Dump Run"),
	}
	totals := TotalHours(events, w, at(loc, 11, 12, 0))
	assert.Equal(t, map[string]float64{"Tony": 0.33, "Dad": 1.0}, totals)
}

func TestCrew(t *testing.T) {
	crew := Crew(map[string]float64{"Tony": 12.5, "Hector": 20.25}, DefaultCapacityHours)
	assert.Equal(t, 32.75, crew.GrandTotalHours)
	assert.Equal(t, 47.25, crew.RemainingHours)

	over := Crew(map[string]float64{"Tony": 50, "Hector": 45.5}, DefaultCapacityHours)
	assert.Equal(t, 95.5, over.GrandTotalHours)
	assert.Equal(t, -15.5, over.RemainingHours)

	empty := Crew(map[string]float64{}, 40)
	assert.Equal(t, domain.CrewTotals{GrandTotalHours: 0, RemainingHours: 40}, empty)
}
