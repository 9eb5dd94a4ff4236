package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/crewclock/internal/domain"
	"github.com/alexanderramin/crewclock/internal/timesheet"
)

// FormatWeekReport renders the weekly dashboard: per-worker totals, daily
// totals and the crew capacity line.
func FormatWeekReport(r *timesheet.Report, today string) string {
	var b strings.Builder

	start := r.Window.Start.Format("Jan 02")
	end := r.Window.End.Format("Jan 02, 2006")
	b.WriteString(Bold(fmt.Sprintf("Week of %s to %s", start, end)))
	if today != "" {
		b.WriteString(Dim("  (today: " + today + ")"))
	}
	b.WriteString("\n\n")

	b.WriteString(Header("Weekly"))
	b.WriteString("\n")
	weekly := make([][]string, 0, len(r.Weekly))
	for _, w := range r.Weekly {
		weekly = append(weekly, []string{w.Worker, w.Formatted, Hours(r.TotalHours[w.Worker])})
	}
	b.WriteString(Table{
		Headers:    []string{"WORKER", "CLOSED", "HOURS"},
		Rows:       weekly,
		RightAlign: map[int]bool{1: true, 2: true},
	}.Render())
	b.WriteString("\n")

	b.WriteString(Header("Daily"))
	b.WriteString("\n")
	if len(r.Daily) == 0 {
		b.WriteString(Dim("No completed sessions this week."))
		b.WriteString("\n")
	} else {
		daily := make([][]string, 0, len(r.Daily))
		for _, d := range r.Daily {
			daily = append(daily, []string{DayLabel(d.Date), d.Worker, d.Formatted})
		}
		b.WriteString(Table{
			Headers:    []string{"DATE", "WORKER", "WORKED"},
			Rows:       daily,
			RightAlign: map[int]bool{2: true},
		}.Render())
	}
	b.WriteString("\n")

	capacity := r.Crew.GrandTotalHours + r.Crew.RemainingHours
	remaining := RemainingStyle(r.Crew.RemainingHours, capacity).Render(Hours(r.Crew.RemainingHours))
	fmt.Fprintf(&b, "Crew total %s h, remaining %s of %s h\n",
		Bold(Hours(r.Crew.GrandTotalHours)), remaining, Hours(capacity))

	if open := countAnomalies(r.Anomalies, domain.AnomalyOpenIn); open > 0 {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("%d worker(s) still clocked in", open)))
		b.WriteString("\n")
	}
	if other := len(r.Anomalies) - countAnomalies(r.Anomalies, domain.AnomalyOpenIn); other > 0 {
		b.WriteString(Dim(fmt.Sprintf("%d unmatched punch(es) ignored", other)))
		b.WriteString("\n")
	}
	if dropped := r.Stats.Dropped(); dropped > 0 {
		b.WriteString(Dim(fmt.Sprintf("%d malformed record(s) skipped", dropped)))
		b.WriteString("\n")
	}
	return b.String()
}

func countAnomalies(as []domain.Anomaly, kind domain.AnomalyKind) int {
	n := 0
	for _, a := range as {
		if a.Kind == kind {
			n++
		}
	}
	return n
}

// FormatEntries renders punches as a table in the order given.
func FormatEntries(entries []domain.Event) string {
	if len(entries) == 0 {
		return Dim("No punches found.") + "\n"
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			DayLabel(e.Timestamp) + " " + ClockTime(e.Timestamp),
			e.Worker,
			ActionPill(e.Action),
			Placeholder(e.Project),
			Dim(Truncate(e.Note, 40)),
			TruncID(e.SourceID),
		})
	}
	return RenderTable([]string{"TIME", "WORKER", "ACTION", "PROJECT", "NOTE", "ID"}, rows)
}

// FormatPunch confirms a recorded punch.
func FormatPunch(e *domain.RawEvent) string {
	verb := "Clocked in"
	if domain.Action(e.Action) == domain.ActionOut {
		verb = "Clocked out"
	}
	line := fmt.Sprintf("%s %s %s at %s", StyleGreen.Render("✔"), verb, Bold(e.Worker), e.Timestamp)
	if e.Project != "" && e.Project != domain.NoProject {
		line += Dim(" on " + e.Project)
	}
	if e.PhotoRef != "" {
		line += Dim(" (photo " + e.PhotoRef + ")")
	}
	return line + "\n"
}

// FormatStatus describes a worker's last punch.
func FormatStatus(worker string, last *domain.Event) string {
	if last == nil {
		return fmt.Sprintf("%s has no punches.\n", worker)
	}
	state := "clocked out"
	if last.Action == domain.ActionIn {
		state = "clocked in"
	}
	return fmt.Sprintf("%s is %s since %s %s\n",
		Bold(last.Worker), state, DayLabel(last.Timestamp), ClockTime(last.Timestamp))
}
