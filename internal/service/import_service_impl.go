package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/crewclock/internal/db"
	"github.com/alexanderramin/crewclock/internal/domain"
	"github.com/alexanderramin/crewclock/internal/exporter"
	"github.com/alexanderramin/crewclock/internal/repository"
	"github.com/google/uuid"
)

type importService struct {
	uow      db.UnitOfWork
	now      Clock
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, now Clock, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, now: clockOrSystem(now), observer: useCaseObserverOrNoop(observers)}
}

// FormatFromPath picks XLSX for .xlsx files and CSV for anything else.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return FormatXLSX
	}
	return FormatCSV
}

func (s *importService) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()
	return s.Import(ctx, f, FormatFromPath(path))
}

// Import appends every row to the log inside one transaction. Each row gets
// a fresh ID and a canonical worker name, and keeps its timestamp verbatim,
// malformed or not.
func (s *importService) Import(ctx context.Context, r io.Reader, format Format) (result *ImportResult, err error) {
	fields := map[string]any{"format": string(format)}
	defer observe(ctx, s.observer, "import", time.Now(), fields, &err)

	var rows []domain.RawEvent
	switch format {
	case FormatCSV, "":
		rows, err = exporter.ReadCSV(r)
	case FormatXLSX:
		rows, err = exporter.ReadXLSX(r)
	default:
		return nil, fmt.Errorf("unsupported import format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}

	created := s.now().UTC()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		events := repository.NewSQLiteEventRepo(tx)
		for i := range rows {
			row := rows[i]
			row.Worker = domain.CanonicalWorker(row.Worker)
			row.SourceID = uuid.New().String()
			row.CreatedAt = created
			if err := events.Create(ctx, &row); err != nil {
				return fmt.Errorf("importing row %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields["rows"] = len(rows)
	return &ImportResult{Imported: len(rows)}, nil
}
