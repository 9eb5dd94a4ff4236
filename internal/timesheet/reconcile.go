package timesheet

import (
	"sort"
	"time"

	"github.com/alexanderramin/crewclock/internal/domain"
)

// ReconcileResult holds the closed sessions of a scan plus the punches that
// could not be paired. Open is the dangling In left at the end, if any.
type ReconcileResult struct {
	Sessions  []domain.Session
	Anomalies []domain.Anomaly
	Open      *domain.Event
}

// Reconcile pairs one worker's In/Out punches into sessions.
//
// The scan runs in timestamp order (ties keep input order). An In opens a
// session only inside w; a second In before any Out replaces the pending
// start. An Out closes the pending session and emits it only when the Out is
// inside w. When project is non-empty, punches for other projects are
// skipped entirely, so a per-project scan can pair differently from an
// unfiltered one. A trailing unmatched In never becomes a session.
func Reconcile(events []domain.Event, w domain.WeekWindow, project string) ReconcileResult {
	ordered := sortByTimestamp(events)
	res := ReconcileResult{Sessions: []domain.Session{}}

	var open *domain.Event
	for i := range ordered {
		ev := ordered[i]
		if project != "" && ev.Project != project {
			continue
		}

		switch ev.Action {
		case domain.ActionIn:
			if open != nil {
				res.Anomalies = append(res.Anomalies, anomalyFor(domain.AnomalyReplacedIn, *open))
			}
			if w.Contains(ev.Timestamp) {
				open = &ev
			} else {
				open = nil
			}

		case domain.ActionOut:
			if open == nil {
				res.Anomalies = append(res.Anomalies, anomalyFor(domain.AnomalyOrphanOut, ev))
				continue
			}
			if w.Contains(ev.Timestamp) {
				res.Sessions = append(res.Sessions, newSession(*open, ev))
			}
			open = nil
		}
	}

	if open != nil {
		res.Anomalies = append(res.Anomalies, anomalyFor(domain.AnomalyOpenIn, *open))
		res.Open = open
	}
	return res
}

// ReconcileAll groups events by worker and reconciles each group in worker
// name order. A non-empty worker keeps only that worker's punches.
func ReconcileAll(events []domain.Event, w domain.WeekWindow, project, worker string) ReconcileResult {
	all := ReconcileResult{Sessions: []domain.Session{}}
	byWorker := groupByWorker(events)

	for _, name := range sortedKeys(byWorker) {
		if worker != "" && name != worker {
			continue
		}
		res := Reconcile(byWorker[name], w, project)
		all.Sessions = append(all.Sessions, res.Sessions...)
		all.Anomalies = append(all.Anomalies, res.Anomalies...)
	}
	return all
}

func newSession(in, out domain.Event) domain.Session {
	start := in.Timestamp
	minutes := out.Timestamp.Sub(start).Minutes()
	if minutes < 0 {
		minutes = 0
	}
	return domain.Session{
		Worker:  in.Worker,
		Date:    startOfDay(start),
		Start:   start,
		End:     out.Timestamp,
		Minutes: minutes,
		Project: out.Project,
	}
}

func anomalyFor(kind domain.AnomalyKind, ev domain.Event) domain.Anomaly {
	return domain.Anomaly{
		Kind:      kind,
		Worker:    ev.Worker,
		SourceID:  ev.SourceID,
		Timestamp: ev.Timestamp,
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// sortByTimestamp returns a sorted copy; the input is left untouched.
func sortByTimestamp(events []domain.Event) []domain.Event {
	out := make([]domain.Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

func groupByWorker(events []domain.Event) map[string][]domain.Event {
	groups := make(map[string][]domain.Event)
	for _, e := range events {
		groups[e.Worker] = append(groups[e.Worker], e)
	}
	return groups
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
