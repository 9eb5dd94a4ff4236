// Package timesheet reconstructs work sessions and weekly totals from an
// unordered log of clock punches. Everything here is pure computation over
// an input snapshot; reads and writes of the log happen elsewhere.
package timesheet

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/alexanderramin/crewclock/internal/domain"
)

// Layouts carrying their own offset. The instant is converted into the crew zone.
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05 -0700",
}

// Layouts without zone information. The wall clock is localized into the crew zone.
var naiveLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// NormalizeStats counts what the normalizer kept and why it dropped the rest.
type NormalizeStats struct {
	Accepted      int `json:"accepted"`
	BadTimestamp  int `json:"bad_timestamp"`
	BadAction     int `json:"bad_action"`
	MissingWorker int `json:"missing_worker"`
}

func (s NormalizeStats) Dropped() int {
	return s.BadTimestamp + s.BadAction + s.MissingWorker
}

type Normalizer struct {
	loc    *time.Location
	logger *slog.Logger
}

func NewNormalizer(loc *time.Location, logger *slog.Logger) *Normalizer {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Normalizer{loc: loc, logger: logger}
}

// Normalize cleans raw punches. Records that cannot be interpreted are
// dropped and counted; they never fail the batch. Output order follows input.
func (n *Normalizer) Normalize(raw []domain.RawEvent) ([]domain.Event, NormalizeStats) {
	var stats NormalizeStats
	out := make([]domain.Event, 0, len(raw))

	for _, r := range raw {
		worker := domain.CanonicalWorker(r.Worker)
		if worker == "" {
			stats.MissingWorker++
			n.drop(r, "missing worker")
			continue
		}
		action, err := domain.ParseAction(r.Action)
		if err != nil {
			stats.BadAction++
			n.drop(r, "bad action")
			continue
		}
		ts, err := ParseTimestamp(r.Timestamp, n.loc)
		if err != nil {
			stats.BadTimestamp++
			n.drop(r, "bad timestamp")
			continue
		}

		project := strings.TrimSpace(r.Project)
		if project == "" {
			project = domain.NoProject
		}

		out = append(out, domain.Event{
			SourceID:  r.SourceID,
			Worker:    worker,
			Action:    action,
			Timestamp: ts,
			Project:   project,
			Note:      r.Note,
			PhotoRef:  r.PhotoRef,
		})
		stats.Accepted++
	}

	return out, stats
}

func (n *Normalizer) drop(r domain.RawEvent, reason string) {
	n.logger.Debug("dropping clock event",
		"source_id", r.SourceID,
		"reason", reason,
		"timestamp", r.Timestamp,
	)
}

// ParseTimestamp interprets s in loc. Zone-aware inputs are converted;
// naive inputs are localized, and a naive wall clock that falls in a DST
// gap or fold is rejected rather than guessed.
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, domain.ErrInvalidTimestamp
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.In(loc), nil
		}
	}
	for _, layout := range naiveLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		local, ok := localize(t, loc)
		if !ok {
			return time.Time{}, fmt.Errorf("%w: %q is ambiguous or nonexistent in %s", domain.ErrInvalidTimestamp, s, loc)
		}
		return local, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidTimestamp, s)
}

// localize places the wall clock of naive into loc. It reports false when
// that wall clock does not exist in loc or exists twice.
func localize(naive time.Time, loc *time.Location) (time.Time, bool) {
	y, mo, d := naive.Date()
	h, mi, s := naive.Clock()
	t := time.Date(y, mo, d, h, mi, s, naive.Nanosecond(), loc)
	if !sameWall(t, naive) {
		return time.Time{}, false
	}

	_, before := t.Add(-12 * time.Hour).Zone()
	_, after := t.Add(12 * time.Hour).Zone()
	if before != after {
		shift := time.Duration(before-after) * time.Second
		if shift < 0 {
			shift = -shift
		}
		if sameWall(t.Add(shift), naive) || sameWall(t.Add(-shift), naive) {
			return time.Time{}, false
		}
	}
	return t, true
}

func sameWall(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	ah, ami, as := a.Clock()
	bh, bmi, bs := b.Clock()
	return ay == by && am == bm && ad == bd &&
		ah == bh && ami == bmi && as == bs &&
		a.Nanosecond() == b.Nanosecond()
}
