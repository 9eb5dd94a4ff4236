package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Truncate shortens s to n runes, marking the cut with "...".
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 4 {
		return s
	}
	return string(r[:n-3]) + "..."
}

// Hours renders a decimal hour figure with two places.
func Hours(h float64) string {
	return fmt.Sprintf("%.2f", h)
}

// DayLabel renders a session or summary date, e.g. "Mon Oct 06".
func DayLabel(t time.Time) string {
	return t.Format("Mon Jan 02")
}

// ClockTime renders a punch time of day, e.g. "09:05".
func ClockTime(t time.Time) string {
	return t.Format("15:04")
}

// Placeholder substitutes "-" for blank cells.
func Placeholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
