package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/crewclock/internal/domain"
	"github.com/alexanderramin/crewclock/internal/repository"
	"github.com/alexanderramin/crewclock/internal/timesheet"
)

// ReportSettings carries the crew-wide parameters of the weekly view.
type ReportSettings struct {
	Roster         domain.Roster
	Location       *time.Location
	CapacityHours  float64
	DefaultLimit   int
	WarnOnDoubleIn bool
	Logger         *slog.Logger
	Now            Clock
}

type reportService struct {
	events   repository.EventRepo
	settings ReportSettings
	observer UseCaseObserver
}

func NewReportService(events repository.EventRepo, settings ReportSettings, observers ...UseCaseObserver) ReportService {
	settings.Location = locationOrUTC(settings.Location)
	settings.Now = clockOrSystem(settings.Now)
	return &reportService{events: events, settings: settings, observer: useCaseObserverOrNoop(observers)}
}

// Week reads a snapshot of the whole log and computes the report over it.
// A failed read aborts the report; malformed punches never do.
func (s *reportService) Week(ctx context.Context, req WeekRequest) (report *timesheet.Report, err error) {
	fields := map[string]any{"week": req.WeekStart, "worker": req.Worker, "project": req.Project}
	defer observe(ctx, s.observer, "week-report", time.Now(), fields, &err)

	weekStart, err := timesheet.ParseWeekStart(req.WeekStart, s.settings.Location)
	if err != nil {
		return nil, err
	}

	raw, err := s.events.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching events: %w", err)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = s.settings.DefaultLimit
	}

	report = timesheet.Compute(timesheet.Input{
		Events:         raw,
		Now:            s.settings.Now(),
		Location:       s.settings.Location,
		Roster:         s.settings.Roster,
		WeekStart:      weekStart,
		Worker:         req.Worker,
		Project:        req.Project,
		Limit:          limit,
		Capacity:       s.settings.CapacityHours,
		WarnOnDoubleIn: s.settings.WarnOnDoubleIn,
		Logger:         s.settings.Logger,
	})
	fields["sessions"] = len(report.Sessions)
	fields["dropped"] = report.Stats.Dropped()
	return report, nil
}
