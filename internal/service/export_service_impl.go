package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/crewclock/internal/exporter"
	"github.com/alexanderramin/crewclock/internal/repository"
)

type exportService struct {
	events   repository.EventRepo
	observer UseCaseObserver
}

func NewExportService(events repository.EventRepo, observers ...UseCaseObserver) ExportService {
	return &exportService{events: events, observer: useCaseObserverOrNoop(observers)}
}

// Export writes the whole log in insertion order and returns the row count.
func (s *exportService) Export(ctx context.Context, w io.Writer, format Format) (n int, err error) {
	fields := map[string]any{"format": string(format)}
	defer observe(ctx, s.observer, "export", time.Now(), fields, &err)

	events, err := s.events.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetching events: %w", err)
	}

	switch format {
	case FormatCSV, "":
		err = exporter.WriteCSV(w, events)
	case FormatXLSX:
		err = exporter.WriteXLSX(w, events)
	default:
		return 0, fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		return 0, err
	}
	fields["rows"] = len(events)
	return len(events), nil
}
