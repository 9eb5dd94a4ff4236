package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/crewclock/internal/domain"
	"github.com/alexanderramin/crewclock/internal/photostore"
	"github.com/alexanderramin/crewclock/internal/repository"
	"github.com/alexanderramin/crewclock/internal/timesheet"
	"github.com/google/uuid"
)

type clockService struct {
	events   repository.EventRepo
	photos   photostore.Store
	roster   domain.Roster
	loc      *time.Location
	now      Clock
	observer UseCaseObserver
}

// NewClockService records punches. photos may be nil, in which case
// attached photos are ignored.
func NewClockService(
	events repository.EventRepo,
	photos photostore.Store,
	roster domain.Roster,
	loc *time.Location,
	now Clock,
	observers ...UseCaseObserver,
) ClockService {
	return &clockService{
		events:   events,
		photos:   photos,
		roster:   roster,
		loc:      locationOrUTC(loc),
		now:      clockOrSystem(now),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *clockService) Punch(ctx context.Context, req PunchRequest) (ev *domain.RawEvent, err error) {
	fields := map[string]any{"action": req.Action}
	defer observe(ctx, s.observer, "punch", time.Now(), fields, &err)

	member, err := s.roster.Verify(req.Worker, req.PIN)
	if err != nil {
		return nil, err
	}
	fields["worker"] = member.Name

	action, err := domain.ParseAction(req.Action)
	if err != nil {
		return nil, err
	}

	now := s.now().In(s.loc)
	ev = &domain.RawEvent{
		SourceID:  uuid.New().String(),
		Worker:    member.Name,
		Action:    string(action),
		Timestamp: now.Format(time.RFC3339),
		Project:   strings.TrimSpace(req.Project),
		Note:      strings.TrimSpace(req.Note),
		CreatedAt: now.UTC(),
	}

	if req.Photo != nil && s.photos != nil {
		ref, err := s.photos.Save(ctx, photostore.PhotoName(member.Name, now), req.Photo, req.PhotoContentType)
		if err != nil {
			return nil, fmt.Errorf("saving photo: %w", err)
		}
		ev.PhotoRef = ref
		fields["photo"] = ref
	}

	if err := s.events.Create(ctx, ev); err != nil {
		return nil, fmt.Errorf("recording punch: %w", err)
	}
	return ev, nil
}

func (s *clockService) Status(ctx context.Context, worker string) (*domain.Event, error) {
	name := domain.CanonicalWorker(worker)
	if _, ok := s.roster.Lookup(name); !ok {
		return nil, domain.ErrUnknownWorker
	}

	raw, err := s.events.ListByWorker(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("fetching events: %w", err)
	}
	events, _ := timesheet.NewNormalizer(s.loc, nil).Normalize(raw)

	var last *domain.Event
	for i := range events {
		if last == nil || !events[i].Timestamp.Before(last.Timestamp) {
			last = &events[i]
		}
	}
	return last, nil
}
