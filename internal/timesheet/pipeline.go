package timesheet

import (
	"log/slog"
	"time"

	"github.com/alexanderramin/crewclock/internal/domain"
)

// Input is one snapshot of the punch log plus the view parameters.
// Now is required; the pipeline never reads the wall clock itself.
type Input struct {
	Events         []domain.RawEvent
	Now            time.Time
	Location       *time.Location
	Roster         domain.Roster
	WeekStart      *time.Time
	Worker         string
	Project        string
	Limit          int
	Capacity       float64
	WarnOnDoubleIn bool
	Logger         *slog.Logger
}

// Report is everything the weekly view shows.
type Report struct {
	Window     domain.WeekWindow      `json:"window"`
	Sessions   []domain.Session       `json:"sessions"`
	Daily      []domain.DailySummary  `json:"daily_summary"`
	Weekly     []domain.WeeklySummary `json:"weekly_summary"`
	TotalHours map[string]float64     `json:"total_hours"`
	Crew       domain.CrewTotals      `json:"crew"`
	Entries    []domain.Event         `json:"entries"`
	Workers    []string               `json:"workers"`
	Anomalies  []domain.Anomaly       `json:"anomalies"`
	Stats      NormalizeStats         `json:"stats"`
}

// Compute runs normalize, window, reconcile, aggregate and filter over the
// snapshot. It does not mutate in.Events and returns the same report for
// the same input.
func Compute(in Input) *Report {
	logger := in.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}
	capacity := in.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacityHours
	}

	events, stats := NewNormalizer(loc, logger).Normalize(in.Events)
	window := ResolveWeek(in.Now, loc, in.WeekStart)
	weekEvents := inWindow(events, window)

	adminName := in.Roster.AdminName()
	worker := workerFilter(in.Worker, adminName)
	project := projectFilter(in.Project)

	rec := ReconcileAll(weekEvents, window, project, worker)
	if in.WarnOnDoubleIn {
		for _, a := range rec.Anomalies {
			if a.Kind == domain.AnomalyReplacedIn {
				logger.Warn("clock-in replaced by a later clock-in",
					"worker", a.Worker,
					"source_id", a.SourceID,
					"timestamp", a.Timestamp,
				)
			}
		}
	}

	totals := TotalHours(weekEvents, window, in.Now)
	view := FilterEntries(weekEvents, ViewFilter{
		Worker:    in.Worker,
		Project:   in.Project,
		Limit:     in.Limit,
		AdminName: adminName,
	})

	anomalies := rec.Anomalies
	if anomalies == nil {
		anomalies = []domain.Anomaly{}
	}

	report := &Report{
		Window:     window,
		Sessions:   rec.Sessions,
		Daily:      DailySummaries(rec.Sessions),
		Weekly:     WeeklySummaries(rec.Sessions, in.Roster),
		TotalHours: totals,
		Crew:       Crew(totals, capacity),
		Entries:    view.Entries,
		Workers:    view.Workers,
		Anomalies:  anomalies,
		Stats:      stats,
	}

	logger.Debug("computed weekly report",
		"window_start", window.Start,
		"events", len(in.Events),
		"dropped", stats.Dropped(),
		"sessions", len(report.Sessions),
		"anomalies", len(anomalies),
	)
	return report
}
