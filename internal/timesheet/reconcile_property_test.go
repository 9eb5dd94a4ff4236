package timesheet

import (
	"math/rand"
	"testing"
	"time"

	"github.com/alexanderramin/crewclock/internal/domain"
	"github.com/stretchr/testify/assert"
)

func randomPunches(rng *rand.Rand, w domain.WeekWindow, n int) []domain.Event {
	span := int64(w.End.Sub(w.Start))
	events := make([]domain.Event, n)
	for i := range events {
		action := domain.ActionIn
		if rng.Intn(2) == 1 {
			action = domain.ActionOut
		}
		project := "A"
		if rng.Intn(3) == 0 {
			project = "B"
		}
		ts := w.Start.Add(time.Duration(rng.Int63n(span))).Truncate(time.Minute)
		// Occasionally stray outside the window.
		if rng.Intn(10) == 0 {
			ts = w.End.Add(time.Duration(rng.Intn(48)) * time.Hour)
		}
		events[i] = domain.Event{
			SourceID:  string(rune('a' + i%26)),
			Worker:    "Tony",
			Action:    action,
			Timestamp: ts,
			Project:   project,
		}
	}
	return events
}

// TestReconcile_Invariants property-tests the pairing bounds: sessions never
// exceed half the punches and durations are never negative.
func TestReconcile_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	w := ResolveWeek(time.Date(2025, 10, 8, 12, 0, 0, 0, time.UTC), time.UTC, nil)

	for trial := 0; trial < 300; trial++ {
		n := rng.Intn(30)
		events := randomPunches(rng, w, n)

		for _, project := range []string{"", "A", "B"} {
			res := Reconcile(events, w, project)

			assert.LessOrEqual(t, len(res.Sessions), n/2,
				"trial %d project %q: %d sessions from %d punches", trial, project, len(res.Sessions), n)
			for _, s := range res.Sessions {
				assert.GreaterOrEqual(t, s.Minutes, 0.0, "trial %d: negative duration", trial)
				assert.True(t, w.Contains(s.Start), "trial %d: session start outside window", trial)
				assert.True(t, w.Contains(s.End), "trial %d: session end outside window", trial)
			}
		}
	}
}

// TestReconcile_SessionsOnlyGrowOnClosingOut checks that every emitted
// session ends on an Out and that Outs seen while idle never emit.
func TestReconcile_SessionsOnlyGrowOnClosingOut(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	w := ResolveWeek(time.Date(2025, 10, 8, 12, 0, 0, 0, time.UTC), time.UTC, nil)

	for trial := 0; trial < 300; trial++ {
		events := randomPunches(rng, w, rng.Intn(20))
		ordered := sortByTimestamp(events)

		prev := 0
		for i := range ordered {
			res := Reconcile(ordered[:i+1], w, "")
			grew := len(res.Sessions) - prev
			assert.True(t, grew == 0 || grew == 1, "trial %d: grew by %d", trial, grew)
			if grew == 1 {
				assert.Equal(t, domain.ActionOut, ordered[i].Action, "trial %d: session emitted on a non-Out", trial)
			}
			if ordered[i].Action == domain.ActionIn {
				assert.Zero(t, grew, "trial %d: In emitted a session", trial)
			}
			prev = len(res.Sessions)
		}
	}
}

func TestReconcile_TrailingInNeverInSessions(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	w := ResolveWeek(time.Date(2025, 10, 8, 12, 0, 0, 0, time.UTC), time.UTC, nil)

	for trial := 0; trial < 200; trial++ {
		events := randomPunches(rng, w, rng.Intn(15))
		res := Reconcile(events, w, "")
		if res.Open == nil {
			continue
		}
		for _, s := range res.Sessions {
			assert.True(t, s.End.Before(res.Open.Timestamp) || s.End.Equal(res.Open.Timestamp),
				"trial %d: session closed after the dangling In", trial)
		}
	}
}
