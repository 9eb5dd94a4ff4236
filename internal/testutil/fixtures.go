package testutil

import (
	"time"

	"github.com/alexanderramin/crewclock/internal/domain"
	"github.com/google/uuid"
)

type EventOption func(*domain.RawEvent)

func WithProject(p string) EventOption {
	return func(e *domain.RawEvent) {
		e.Project = p
	}
}

func WithNote(n string) EventOption {
	return func(e *domain.RawEvent) {
		e.Note = n
	}
}

func WithPhoto(ref string) EventOption {
	return func(e *domain.RawEvent) {
		e.PhotoRef = ref
	}
}

func WithID(id string) EventOption {
	return func(e *domain.RawEvent) {
		e.SourceID = id
	}
}

// WithRawTimestamp stores ts verbatim, for malformed legacy values.
func WithRawTimestamp(ts string) EventOption {
	return func(e *domain.RawEvent) {
		e.Timestamp = ts
	}
}

// NewTestEvent builds a punch stamped at ts in RFC3339.
func NewTestEvent(worker string, action domain.Action, ts time.Time, opts ...EventOption) *domain.RawEvent {
	e := &domain.RawEvent{
		SourceID:  uuid.New().String(),
		Worker:    worker,
		Action:    string(action),
		Timestamp: ts.Format(time.RFC3339),
		Project:   domain.NoProject,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// TestRoster mirrors the crew file used across package tests.
func TestRoster() domain.Roster {
	return domain.Roster{Members: []domain.Member{
		{Name: "Tony", PIN: "1234"},
		{Name: "Hector", PIN: "5678"},
		{Name: "Dad", PIN: "1111"},
		{Name: "Admin", PIN: "0308", Admin: true},
	}}
}
