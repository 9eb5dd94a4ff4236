package domain

import "time"

// WeekWindow is an inclusive reporting window, Start 00:00 to End 23:59:59.999.
type WeekWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (w WeekWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Session is a closed In/Out pair. Derived on every read, never stored.
type Session struct {
	Worker  string    `json:"worker"`
	Date    time.Time `json:"date"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Minutes float64   `json:"minutes"`
	Project string    `json:"project"`
}
