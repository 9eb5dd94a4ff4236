package timesheet

import (
	"testing"

	"github.com/alexanderramin/crewclock/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewEvents(t *testing.T) []domain.Event {
	loc := pacific(t)
	return []domain.Event{
		onProject(punch("Tony", domain.ActionOut, at(loc, 8, 12, 0)), "Garage Conversion"),
		onProject(punch("Tony", domain.ActionIn, at(loc, 8, 9, 0)), "Garage Conversion"),
		onProject(punch("Hector", domain.ActionIn, at(loc, 8, 10, 0)), "Dump Run"),
		onProject(punch("Hector", domain.ActionOut, at(loc, 8, 11, 0)), "Dump Run"),
	}
}

func TestFilterEntries_NoRestriction(t *testing.T) {
	events := viewEvents(t)

	for _, worker := range []string{"", "All", "all", "Admin", " admin "} {
		v := FilterEntries(events, ViewFilter{Worker: worker, Project: "All", AdminName: "Admin"})
		require.Len(t, v.Entries, 4, "worker %q", worker)
		assert.Equal(t, "Tony", v.Entries[0].Worker)
		assert.Equal(t, domain.ActionIn, v.Entries[0].Action)
		assert.Equal(t, []string{"Hector", "Tony"}, v.Workers)
	}
}

func TestFilterEntries_WorkerAndProject(t *testing.T) {
	events := viewEvents(t)

	v := FilterEntries(events, ViewFilter{Worker: "tony", AdminName: "Admin"})
	require.Len(t, v.Entries, 2)
	for _, e := range v.Entries {
		assert.Equal(t, "Tony", e.Worker)
	}
	assert.Equal(t, []string{"Hector", "Tony"}, v.Workers)

	v = FilterEntries(events, ViewFilter{Project: "Dump Run"})
	require.Len(t, v.Entries, 2)
	assert.Equal(t, "Hector", v.Entries[0].Worker)

	v = FilterEntries(events, ViewFilter{Worker: "Tony", Project: "Dump Run"})
	assert.NotNil(t, v.Entries)
	assert.Empty(t, v.Entries)
}

func TestFilterEntries_Limit(t *testing.T) {
	loc := pacific(t)
	var events []domain.Event
	for i := 0; i < 15; i++ {
		events = append(events, punch("Tony", domain.ActionIn, at(loc, 9, 6, i)))
	}

	assert.Len(t, FilterEntries(events, ViewFilter{}).Entries, DefaultLimit)
	assert.Len(t, FilterEntries(events, ViewFilter{Limit: -3}).Entries, DefaultLimit)
	assert.Len(t, FilterEntries(events, ViewFilter{Limit: 4}).Entries, 4)
	assert.Len(t, FilterEntries(events, ViewFilter{Limit: 100}).Entries, 15)

	first := FilterEntries(events, ViewFilter{Limit: 1}).Entries[0]
	assert.Equal(t, at(loc, 9, 6, 0), first.Timestamp)
}

func TestFilterEntries_Empty(t *testing.T) {
	v := FilterEntries(nil, ViewFilter{})
	assert.NotNil(t, v.Entries)
	assert.NotNil(t, v.Workers)
	assert.Empty(t, v.Entries)
	assert.Empty(t, v.Workers)
}
