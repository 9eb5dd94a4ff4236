package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/crewclock/internal/db"
	"github.com/alexanderramin/crewclock/internal/domain"
)

const eventColumns = `id, worker, action, timestamp, project, note, photo_ref, created_at`

// SQLiteEventRepo implements EventRepo over the clock_events table.
type SQLiteEventRepo struct {
	db db.DBTX
}

// NewSQLiteEventRepo accepts either the pool or a transaction.
func NewSQLiteEventRepo(db db.DBTX) *SQLiteEventRepo {
	return &SQLiteEventRepo{db: db}
}

func (r *SQLiteEventRepo) Create(ctx context.Context, e *domain.RawEvent) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	created := e.CreatedAt.UTC().Format(time.RFC3339)
	query := `INSERT INTO clock_events (` + eventColumns + `, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.SourceID,
		e.Worker,
		e.Action,
		e.Timestamp,
		e.Project,
		e.Note,
		e.PhotoRef,
		created,
		created,
	)
	if err != nil {
		return fmt.Errorf("inserting clock event: %w", err)
	}
	return nil
}

func (r *SQLiteEventRepo) GetByID(ctx context.Context, id string) (*domain.RawEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM clock_events WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("clock event %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning clock event: %w", err)
	}
	return e, nil
}

func (r *SQLiteEventRepo) List(ctx context.Context) ([]domain.RawEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM clock_events ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing clock events: %w", err)
	}
	defer rows.Close()
	return scanEvents(rows)
}

func (r *SQLiteEventRepo) ListByWorker(ctx context.Context, worker string) ([]domain.RawEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM clock_events WHERE worker = ? ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query, worker)
	if err != nil {
		return nil, fmt.Errorf("listing clock events for %s: %w", worker, err)
	}
	defer rows.Close()
	return scanEvents(rows)
}

func (r *SQLiteEventRepo) Update(ctx context.Context, e *domain.RawEvent) error {
	query := `UPDATE clock_events
		SET worker = ?, action = ?, timestamp = ?, project = ?, note = ?, photo_ref = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		e.Worker, e.Action, e.Timestamp, e.Project, e.Note, e.PhotoRef, nowUTC(), e.SourceID,
	)
	if err != nil {
		return fmt.Errorf("updating clock event: %w", err)
	}
	return requireAffected(res, "clock event "+e.SourceID)
}

func (r *SQLiteEventRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clock_events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting clock event: %w", err)
	}
	return requireAffected(res, "clock event "+id)
}

func (r *SQLiteEventRepo) DeleteByTimestamp(ctx context.Context, ts string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clock_events WHERE timestamp = ?`, ts)
	if err != nil {
		return 0, fmt.Errorf("deleting clock events at %s: %w", ts, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking affected rows: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.RawEvent, error) {
	var e domain.RawEvent
	var createdAt string
	if err := row.Scan(&e.SourceID, &e.Worker, &e.Action, &e.Timestamp, &e.Project, &e.Note, &e.PhotoRef, &createdAt); err != nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	e.CreatedAt = t
	return &e, nil
}

func scanEvents(rows *sql.Rows) ([]domain.RawEvent, error) {
	events := []domain.RawEvent{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning clock event row: %w", err)
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating clock events: %w", err)
	}
	return events, nil
}
