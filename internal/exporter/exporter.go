// Package exporter moves the punch log in and out of spreadsheet files.
package exporter

import (
	"github.com/alexanderramin/crewclock/internal/domain"
)

// Header is the column order of every export.
var Header = []string{"user", "action", "timestamp", "tasks", "photo", "project", "id"}

// SheetName is the worksheet XLSX exports write to.
const SheetName = "timelogs"

func record(e domain.RawEvent) []string {
	return []string{e.Worker, e.Action, e.Timestamp, e.Note, e.PhotoRef, e.Project, e.SourceID}
}
