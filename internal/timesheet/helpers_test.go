package timesheet

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/alexanderramin/crewclock/internal/domain"
	"github.com/stretchr/testify/require"
)

func pacific(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	return loc
}

// octWeek is Sunday 2025-10-05 through Saturday 2025-10-11.
func octWeek(loc *time.Location) domain.WeekWindow {
	return ResolveWeek(time.Date(2025, 10, 8, 12, 0, 0, 0, loc), loc, nil)
}

func at(loc *time.Location, day, hour, minute int) time.Time {
	return time.Date(2025, 10, day, hour, minute, 0, 0, loc)
}

func punch(worker string, action domain.Action, ts time.Time) domain.Event {
	return domain.Event{
		SourceID:  worker + "-" + string(action) + "-" + ts.Format("0102T1504"),
		Worker:    worker,
		Action:    action,
		Timestamp: ts,
		Project:   domain.NoProject,
	}
}

func onProject(e domain.Event, project string) domain.Event {
	e.Project = project
	return e
}

func raw(worker, action, ts string) domain.RawEvent {
	return domain.RawEvent{SourceID: worker + action + ts, Worker: worker, Action: action, Timestamp: ts}
}

func testRoster() domain.Roster {
	return domain.Roster{Members: []domain.Member{
		{Name: "Tony", PIN: "1234"},
		{Name: "Hector", PIN: "5678"},
		{Name: "Dad", PIN: "1111"},
		{Name: "Admin", PIN: "0308", Admin: true},
	}}
}
