package repository

import (
	"context"

	"github.com/alexanderramin/crewclock/internal/domain"
)

// EventRepo stores clock punches as they were recorded. Timestamps are kept
// verbatim; interpretation happens in the timesheet package.
type EventRepo interface {
	Create(ctx context.Context, e *domain.RawEvent) error
	GetByID(ctx context.Context, id string) (*domain.RawEvent, error)
	// List returns every punch in insertion order.
	List(ctx context.Context) ([]domain.RawEvent, error)
	ListByWorker(ctx context.Context, worker string) ([]domain.RawEvent, error)
	Update(ctx context.Context, e *domain.RawEvent) error
	Delete(ctx context.Context, id string) error
	// DeleteByTimestamp removes every punch whose stored timestamp equals ts
	// and reports how many went.
	DeleteByTimestamp(ctx context.Context, ts string) (int64, error)
}
