package domain

import (
	"fmt"
	"math"
	"time"
)

type DailySummary struct {
	Date      time.Time `json:"date"`
	Worker    string    `json:"worker"`
	Minutes   float64   `json:"minutes"`
	Formatted string    `json:"formatted"`
}

type WeeklySummary struct {
	Worker    string  `json:"worker"`
	Minutes   float64 `json:"minutes"`
	Formatted string  `json:"formatted"`
}

type CrewTotals struct {
	GrandTotalHours float64 `json:"grand_total_hours"`
	RemainingHours  float64 `json:"remaining_hours"`
}

// DateLineLayout renders the "today" line of the weekly view, e.g. "October 06, 2025".
const DateLineLayout = "January 02, 2006"

// FormatMinutes renders minutes as "{h}h {m}m", flooring both parts.
func FormatMinutes(minutes float64) string {
	if minutes < 0 {
		minutes = 0
	}
	h := int(math.Floor(minutes / 60))
	m := int(math.Floor(math.Mod(minutes, 60)))
	return fmt.Sprintf("%dh %dm", h, m)
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
