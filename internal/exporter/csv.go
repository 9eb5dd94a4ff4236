package exporter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/crewclock/internal/domain"
)

// WriteCSV writes events with a header row, in the order given.
func WriteCSV(w io.Writer, events []domain.RawEvent) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, e := range events {
		if err := cw.Write(record(e)); err != nil {
			return fmt.Errorf("writing csv row %s: %w", e.SourceID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV reads either an export written by WriteCSV or a header-less
// legacy log with the columns user, action, timestamp, tasks, photo and
// project. Rows with fewer than three columns are skipped; missing trailing
// columns read as empty. Source IDs come from the id column when present.
func ReadCSV(r io.Reader) ([]domain.RawEvent, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var rows [][]string
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}
		rows = append(rows, row)
	}
	return fromRows(rows), nil
}

func fromRows(rows [][]string) []domain.RawEvent {
	if len(rows) > 0 && isHeader(rows[0]) {
		rows = rows[1:]
	}

	events := make([]domain.RawEvent, 0, len(rows))
	for _, row := range rows {
		if len(row) < 3 {
			continue
		}
		events = append(events, domain.RawEvent{
			Worker:    strings.TrimSpace(cell(row, 0)),
			Action:    strings.TrimSpace(cell(row, 1)),
			Timestamp: strings.TrimSpace(cell(row, 2)),
			Note:      cell(row, 3),
			PhotoRef:  strings.TrimSpace(cell(row, 4)),
			Project:   strings.TrimSpace(cell(row, 5)),
			SourceID:  strings.TrimSpace(cell(row, 6)),
		})
	}
	return events
}

func isHeader(row []string) bool {
	return len(row) >= 3 &&
		strings.EqualFold(strings.TrimSpace(row[0]), Header[0]) &&
		strings.EqualFold(strings.TrimSpace(row[1]), Header[1]) &&
		strings.EqualFold(strings.TrimSpace(row[2]), Header[2])
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
