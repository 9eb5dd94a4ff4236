package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/crewclock/internal/domain"
	"github.com/alexanderramin/crewclock/internal/timesheet"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"framing the north wall", 10, "framing..."},
		{"ñandú ñandú", 8, "ñandú..."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Truncate(tt.in, tt.n), tt.in)
	}
}

func TestTruncID(t *testing.T) {
	assert.Contains(t, TruncID("0123456789abcdef"), "01234567")
}

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "-", Placeholder(""))
	assert.Equal(t, "-", Placeholder("  "))
	assert.Equal(t, "Kitchen", Placeholder("Kitchen"))
}

func TestRemainingStyle(t *testing.T) {
	assert.Equal(t, ColorRed, RemainingStyle(-1, 80).GetForeground())
	assert.Equal(t, ColorYellow, RemainingStyle(8, 80).GetForeground())
	assert.Equal(t, ColorGreen, RemainingStyle(40, 80).GetForeground())
	assert.Equal(t, ColorGreen, RemainingStyle(0.5, 0).GetForeground())
}

func TestTable_AlignsColumns(t *testing.T) {
	out := Table{
		Headers:    []string{"WORKER", "HOURS"},
		Rows:       [][]string{{"Tony", "2.00"}, {"Hector", "10.50"}},
		RightAlign: map[int]bool{1: true},
	}.Render()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, lipgloss.Width(lines[2]), lipgloss.Width(lines[3]))
	assert.True(t, strings.HasSuffix(lines[2], " 2.00"))
	assert.True(t, strings.HasPrefix(lines[3], "Hector"))
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestFormatWeekReport(t *testing.T) {
	start := time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC)
	report := &timesheet.Report{
		Window: domain.WeekWindow{Start: start, End: start.AddDate(0, 0, 7).Add(-time.Millisecond)},
		Daily: []domain.DailySummary{
			{Date: start.AddDate(0, 0, 1), Worker: "Tony", Minutes: 125, Formatted: "2h 5m"},
		},
		Weekly: []domain.WeeklySummary{
			{Worker: "Tony", Minutes: 125, Formatted: "2h 5m"},
			{Worker: "Hector", Formatted: "0h 0m"},
		},
		TotalHours: map[string]float64{"Tony": 2.08, "Hector": 1.5},
		Crew:       domain.CrewTotals{GrandTotalHours: 3.58, RemainingHours: 76.42},
		Anomalies:  []domain.Anomaly{{Kind: domain.AnomalyOpenIn, Worker: "Hector"}},
	}

	out := FormatWeekReport(report, "October 08, 2025")
	assert.Contains(t, out, "Week of Oct 05 to Oct 11, 2025")
	assert.Contains(t, out, "October 08, 2025")
	assert.Contains(t, out, "Mon Oct 06")
	assert.Contains(t, out, "2h 5m")
	assert.Contains(t, out, "1.50")
	assert.Contains(t, out, "76.42")
	assert.Contains(t, out, "80.00")
	assert.Contains(t, out, "1 worker(s) still clocked in")
	assert.NotContains(t, out, "unmatched")
}

func TestFormatEntries(t *testing.T) {
	assert.Contains(t, FormatEntries(nil), "No punches found.")

	ts := time.Date(2025, 10, 6, 9, 5, 0, 0, time.UTC)
	out := FormatEntries([]domain.Event{{
		SourceID:  "abcdef0123456789",
		Worker:    "Tony",
		Action:    domain.ActionIn,
		Timestamp: ts,
		Project:   domain.NoProject,
		Note:      "framing",
	}})
	assert.Contains(t, out, "Mon Oct 06 09:05")
	assert.Contains(t, out, "IN")
	assert.Contains(t, out, "abcdef01")
}

func TestFormatStatus(t *testing.T) {
	assert.Contains(t, FormatStatus("Dad", nil), "Dad has no punches.")

	ts := time.Date(2025, 10, 6, 9, 5, 0, 0, time.UTC)
	out := FormatStatus("Tony", &domain.Event{Worker: "Tony", Action: domain.ActionIn, Timestamp: ts})
	assert.Contains(t, out, "clocked in since Mon Oct 06 09:05")
}
