package service

import (
	"sort"
	"time"
)

// Clock supplies the current time. Services default to time.Now.
type Clock func() time.Time

func clockOrSystem(c Clock) Clock {
	if c == nil {
		return time.Now
	}
	return c
}

func locationOrUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}

func sortedFieldKeys(fields map[string]any) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
