package timesheet

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/crewclock/internal/domain"
)

const weekStartLayout = "2006-01-02"

// ResolveWeek returns the reporting window for now. Without an override the
// window starts on the most recent Sunday at or before today; an override
// date is used as the start verbatim, even when it is not a Sunday.
func ResolveWeek(now time.Time, loc *time.Location, override *time.Time) domain.WeekWindow {
	if loc == nil {
		loc = time.UTC
	}

	var y int
	var m time.Month
	var d int
	if override != nil {
		y, m, d = override.In(loc).Date()
	} else {
		local := now.In(loc)
		y, m, d = local.Date()
		// time.Weekday counts from Sunday = 0, which is the days since Sunday.
		d -= int(local.Weekday())
	}

	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	end := time.Date(y, m, d+6, 23, 59, 59, int(999*time.Millisecond), loc)
	return domain.WeekWindow{Start: start, End: end}
}

// ParseWeekStart parses a YYYY-MM-DD override as local midnight in loc.
// An empty string means no override.
func ParseWeekStart(s string, loc *time.Location) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(weekStartLayout, s, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: got %q", domain.ErrInvalidWeekStart, s)
	}
	return &t, nil
}

// inWindow returns the events inside w, preserving order.
func inWindow(events []domain.Event, w domain.WeekWindow) []domain.Event {
	out := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if w.Contains(e.Timestamp) {
			out = append(out, e)
		}
	}
	return out
}
