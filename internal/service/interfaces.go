package service

import (
	"context"
	"io"

	"github.com/alexanderramin/crewclock/internal/domain"
	"github.com/alexanderramin/crewclock/internal/timesheet"
)

// PunchRequest is one clock-in or clock-out from the job site.
type PunchRequest struct {
	Worker  string
	PIN     string
	Action  string
	Project string
	Note    string
	// Photo is optional; when set it is stored and referenced on the punch.
	Photo            io.Reader
	PhotoContentType string
}

type ClockService interface {
	Punch(ctx context.Context, req PunchRequest) (*domain.RawEvent, error)
	// Status reports the last punch of worker, or nil if there is none.
	Status(ctx context.Context, worker string) (*domain.Event, error)
}

type AuthService interface {
	Login(ctx context.Context, pin string) (*domain.Member, error)
}

// WeekRequest selects the week and filters of a report. Zero values mean
// the current week, every worker, every project and the default limit.
type WeekRequest struct {
	WeekStart string
	Worker    string
	Project   string
	Limit     int
}

type ReportService interface {
	Week(ctx context.Context, req WeekRequest) (*timesheet.Report, error)
}

// EventEdit changes the fields that are non-nil.
type EventEdit struct {
	ID        string
	Action    *string
	Project   *string
	Note      *string
	Timestamp *string
}

// AdminService mutates the punch log. Every call takes the acting worker
// and fails with domain.ErrForbidden unless they are the roster admin.
type AdminService interface {
	Delete(ctx context.Context, actor, id string) error
	DeleteAt(ctx context.Context, actor, timestamp string) (int64, error)
	Edit(ctx context.Context, actor string, edit EventEdit) (*domain.RawEvent, error)
}

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

type ExportService interface {
	Export(ctx context.Context, w io.Writer, format Format) (int, error)
}

type ImportResult struct {
	Imported int
}

type ImportService interface {
	Import(ctx context.Context, r io.Reader, format Format) (*ImportResult, error)
	ImportFile(ctx context.Context, path string) (*ImportResult, error)
}
