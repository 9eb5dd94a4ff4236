package exporter

import (
	"fmt"
	"io"

	"github.com/alexanderramin/crewclock/internal/domain"
	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes events to a single "timelogs" worksheet with a header row.
func WriteXLSX(w io.Writer, events []domain.RawEvent) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("naming worksheet: %w", err)
	}

	if err := writeRow(f, 1, Header); err != nil {
		return err
	}
	for i, e := range events {
		if err := writeRow(f, i+2, record(e)); err != nil {
			return err
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freezing header row: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing xlsx: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, n int, values []string) error {
	cellRef, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return fmt.Errorf("row %d: %w", n, err)
	}
	row := make([]any, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := f.SetSheetRow(SheetName, cellRef, &row); err != nil {
		return fmt.Errorf("writing row %d: %w", n, err)
	}
	return nil
}

// ReadXLSX reads the first worksheet of an XLSX export.
func ReadXLSX(r io.Reader) ([]domain.RawEvent, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("no worksheet found")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading worksheet %s: %w", sheet, err)
	}
	return fromRows(rows), nil
}
