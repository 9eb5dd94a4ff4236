package timesheet

import (
	"sort"
	"time"

	"github.com/alexanderramin/crewclock/internal/domain"
)

// DefaultCapacityHours is the crew's weekly hour budget.
const DefaultCapacityHours = 80.0

type dayKey struct {
	date   time.Time
	worker string
}

// DailySummaries sums session minutes per (date, worker). The most recent
// day comes first; workers on the same day are in reverse name order.
func DailySummaries(sessions []domain.Session) []domain.DailySummary {
	minutes := make(map[dayKey]float64)
	var keys []dayKey
	for _, s := range sessions {
		k := dayKey{date: s.Date, worker: s.Worker}
		if _, seen := minutes[k]; !seen {
			keys = append(keys, k)
		}
		minutes[k] += s.Minutes
	}

	sort.Slice(keys, func(i, j int) bool {
		if !keys[i].date.Equal(keys[j].date) {
			return keys[i].date.After(keys[j].date)
		}
		return keys[i].worker > keys[j].worker
	})

	out := make([]domain.DailySummary, 0, len(keys))
	for _, k := range keys {
		m := minutes[k]
		out = append(out, domain.DailySummary{
			Date:      k.date,
			Worker:    k.worker,
			Minutes:   m,
			Formatted: domain.FormatMinutes(m),
		})
	}
	return out
}

// WeeklySummaries returns one entry per roster member, in roster order,
// including members with no sessions. Sessions of unknown workers are ignored.
func WeeklySummaries(sessions []domain.Session, roster domain.Roster) []domain.WeeklySummary {
	totals := make(map[string]float64)
	for _, s := range sessions {
		totals[s.Worker] += s.Minutes
	}

	out := make([]domain.WeeklySummary, 0, len(roster.Members))
	for _, m := range roster.Members {
		mins := totals[m.Name]
		out = append(out, domain.WeeklySummary{
			Worker:    m.Name,
			Minutes:   mins,
			Formatted: domain.FormatMinutes(mins),
		})
	}
	return out
}

// TotalHours rescans every worker's punches in w, ignoring any project
// filter. Unlike the session list, a trailing unmatched In adds now minus its
// timestamp, even when now lies past the window or before the punch. Values
// are hours rounded to 2 decimals.
func TotalHours(events []domain.Event, w domain.WeekWindow, now time.Time) map[string]float64 {
	out := make(map[string]float64)
	byWorker := groupByWorker(inWindow(events, w))

	for _, name := range sortedKeys(byWorker) {
		res := Reconcile(byWorker[name], w, "")

		var minutes float64
		for _, s := range res.Sessions {
			minutes += s.Minutes
		}
		if res.Open != nil {
			minutes += now.Sub(res.Open.Timestamp).Minutes()
		}
		out[name] = domain.Round2(minutes / 60)
	}
	return out
}

// Crew sums per-worker hours and reports what is left of capacity. The
// remainder goes negative when the crew is over budget.
func Crew(totalHours map[string]float64, capacity float64) domain.CrewTotals {
	var sum float64
	for _, name := range sortedKeys(totalHours) {
		sum += totalHours[name]
	}
	grand := domain.Round2(sum)
	return domain.CrewTotals{
		GrandTotalHours: grand,
		RemainingHours:  domain.Round2(capacity - grand),
	}
}
