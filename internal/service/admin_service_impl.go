package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/crewclock/internal/domain"
	"github.com/alexanderramin/crewclock/internal/repository"
	"github.com/alexanderramin/crewclock/internal/timesheet"
)

type adminService struct {
	events   repository.EventRepo
	roster   domain.Roster
	loc      *time.Location
	observer UseCaseObserver
}

func NewAdminService(events repository.EventRepo, roster domain.Roster, loc *time.Location, observers ...UseCaseObserver) AdminService {
	return &adminService{
		events:   events,
		roster:   roster,
		loc:      locationOrUTC(loc),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *adminService) requireAdmin(actor string) error {
	if !s.roster.IsAdmin(actor) {
		return domain.ErrForbidden
	}
	return nil
}

func (s *adminService) Delete(ctx context.Context, actor, id string) (err error) {
	defer observe(ctx, s.observer, "delete-event", time.Now(), map[string]any{"id": id}, &err)

	if err = s.requireAdmin(actor); err != nil {
		return err
	}
	return s.events.Delete(ctx, id)
}

// DeleteAt removes every punch stored with exactly this timestamp string.
func (s *adminService) DeleteAt(ctx context.Context, actor, timestamp string) (n int64, err error) {
	fields := map[string]any{"timestamp": timestamp}
	defer observe(ctx, s.observer, "delete-events-at", time.Now(), fields, &err)

	if err = s.requireAdmin(actor); err != nil {
		return 0, err
	}
	n, err = s.events.DeleteByTimestamp(ctx, strings.TrimSpace(timestamp))
	fields["deleted"] = n
	return n, err
}

func (s *adminService) Edit(ctx context.Context, actor string, edit EventEdit) (ev *domain.RawEvent, err error) {
	defer observe(ctx, s.observer, "edit-event", time.Now(), map[string]any{"id": edit.ID}, &err)

	if err = s.requireAdmin(actor); err != nil {
		return nil, err
	}

	ev, err = s.events.GetByID(ctx, edit.ID)
	if err != nil {
		return nil, err
	}

	if edit.Action != nil {
		action, err := domain.ParseAction(*edit.Action)
		if err != nil {
			return nil, err
		}
		ev.Action = string(action)
	}
	if edit.Timestamp != nil {
		ts, err := timesheet.ParseTimestamp(*edit.Timestamp, s.loc)
		if err != nil {
			return nil, err
		}
		ev.Timestamp = ts.Format(time.RFC3339)
	}
	if edit.Project != nil {
		ev.Project = strings.TrimSpace(*edit.Project)
	}
	if edit.Note != nil {
		ev.Note = strings.TrimSpace(*edit.Note)
	}

	if err := s.events.Update(ctx, ev); err != nil {
		return nil, fmt.Errorf("saving edit: %w", err)
	}
	return ev, nil
}
