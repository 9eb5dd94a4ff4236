package timesheet

import (
	"testing"

	"github.com/alexanderramin/crewclock/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcile_SimplePair(t *testing.T) {
	loc := pacific(t)
	w := octWeek(loc)

	res := Reconcile([]domain.Event{
		punch("Tony", domain.ActionIn, at(loc, 8, 9, 0)),
		punch("Tony", domain.ActionOut, at(loc, 8, 12, 0)),
	}, w, "")

	require.Len(t, res.Sessions, 1)
	s := res.Sessions[0]
	assert.Equal(t, 180.0, s.Minutes)
	assert.Equal(t, at(loc, 8, 0, 0), s.Date)
	assert.Equal(t, "Tony", s.Worker)
	assert.Empty(t, res.Anomalies)
	assert.Nil(t, res.Open)
}

func TestReconcile_SortsUnorderedInput(t *testing.T) {
	loc := pacific(t)
	w := octWeek(loc)

	res := Reconcile([]domain.Event{
		punch("Tony", domain.ActionOut, at(loc, 9, 17, 0)),
		punch("Tony", domain.ActionOut, at(loc, 8, 12, 0)),
		punch("Tony", domain.ActionIn, at(loc, 9, 8, 0)),
		punch("Tony", domain.ActionIn, at(loc, 8, 9, 0)),
	}, w, "")

	require.Len(t, res.Sessions, 2)
	assert.Equal(t, 180.0, res.Sessions[0].Minutes)
	assert.Equal(t, 540.0, res.Sessions[1].Minutes)
	assert.Equal(t, at(loc, 9, 0, 0), res.Sessions[1].Date)
}

func TestReconcile_DoubleInReplacesPendingStart(t *testing.T) {
	loc := pacific(t)
	w := octWeek(loc)

	res := Reconcile([]domain.Event{
		punch("Tony", domain.ActionIn, at(loc, 8, 9, 0)),
		punch("Tony", domain.ActionIn, at(loc, 8, 10, 0)),
		punch("Tony", domain.ActionOut, at(loc, 8, 11, 0)),
	}, w, "")

	require.Len(t, res.Sessions, 1)
	assert.Equal(t, at(loc, 8, 10, 0), res.Sessions[0].Start)
	assert.Equal(t, 60.0, res.Sessions[0].Minutes)

	require.Len(t, res.Anomalies, 1)
	assert.Equal(t, domain.AnomalyReplacedIn, res.Anomalies[0].Kind)
	assert.Equal(t, at(loc, 8, 9, 0), res.Anomalies[0].Timestamp)
}

func TestReconcile_OrphanOutIsIgnored(t *testing.T) {
	loc := pacific(t)
	w := octWeek(loc)

	res := Reconcile([]domain.Event{
		punch("Tony", domain.ActionOut, at(loc, 8, 8, 0)),
		punch("Tony", domain.ActionIn, at(loc, 8, 9, 0)),
		punch("Tony", domain.ActionOut, at(loc, 8, 10, 0)),
		punch("Tony", domain.ActionOut, at(loc, 8, 11, 0)),
	}, w, "")

	require.Len(t, res.Sessions, 1)
	assert.Equal(t, 60.0, res.Sessions[0].Minutes)
	require.Len(t, res.Anomalies, 2)
	assert.Equal(t, domain.AnomalyOrphanOut, res.Anomalies[0].Kind)
	assert.Equal(t, domain.AnomalyOrphanOut, res.Anomalies[1].Kind)
}

func TestReconcile_TrailingInIsNotASession(t *testing.T) {
	loc := pacific(t)
	w := octWeek(loc)

	res := Reconcile([]domain.Event{
		punch("Tony", domain.ActionIn, at(loc, 8, 9, 0)),
	}, w, "")

	assert.Empty(t, res.Sessions)
	require.NotNil(t, res.Open)
	assert.Equal(t, at(loc, 8, 9, 0), res.Open.Timestamp)
	require.Len(t, res.Anomalies, 1)
	assert.Equal(t, domain.AnomalyOpenIn, res.Anomalies[0].Kind)
}

func TestReconcile_WindowBounds(t *testing.T) {
	loc := pacific(t)
	w := octWeek(loc)

	// In before the window does not open a session.
	res := Reconcile([]domain.Event{
		punch("Tony", domain.ActionIn, at(loc, 4, 22, 0)),
		punch("Tony", domain.ActionOut, at(loc, 5, 2, 0)),
	}, w, "")
	assert.Empty(t, res.Sessions)

	// Out after the window closes without emitting.
	res = Reconcile([]domain.Event{
		punch("Tony", domain.ActionIn, at(loc, 11, 22, 0)),
		punch("Tony", domain.ActionOut, at(loc, 12, 2, 0)),
		punch("Tony", domain.ActionOut, at(loc, 12, 3, 0)),
	}, w, "")
	assert.Empty(t, res.Sessions)
	assert.Nil(t, res.Open)

	// An out-of-window In clears a pending in-window start.
	res = Reconcile([]domain.Event{
		punch("Tony", domain.ActionIn, at(loc, 11, 22, 0)),
		punch("Tony", domain.ActionIn, at(loc, 12, 1, 0)),
		punch("Tony", domain.ActionOut, at(loc, 12, 2, 0)),
	}, w, "")
	assert.Empty(t, res.Sessions)
}

func TestReconcile_ProjectFilterChangesPairing(t *testing.T) {
	loc := pacific(t)
	w := octWeek(loc)

	events := []domain.Event{
		onProject(punch("Tony", domain.ActionIn, at(loc, 8, 8, 0)), "Garage Conversion"),
		onProject(punch("Tony", domain.ActionIn, at(loc, 8, 9, 0)), "Dump Run"),
		onProject(punch("Tony", domain.ActionOut, at(loc, 8, 10, 0)), "Dump Run"),
		onProject(punch("Tony", domain.ActionOut, at(loc, 8, 12, 0)), "Garage Conversion"),
	}

	unfiltered := Reconcile(events, w, "")
	require.Len(t, unfiltered.Sessions, 1)
	assert.Equal(t, 60.0, unfiltered.Sessions[0].Minutes)
	assert.Equal(t, "Dump Run", unfiltered.Sessions[0].Project)

	garage := Reconcile(events, w, "Garage Conversion")
	require.Len(t, garage.Sessions, 1)
	assert.Equal(t, 240.0, garage.Sessions[0].Minutes)
	assert.Equal(t, "Garage Conversion", garage.Sessions[0].Project)

	none := Reconcile(events, w, "Bathroom Addition")
	assert.Empty(t, none.Sessions)
}

func TestReconcile_SessionProjectComesFromOut(t *testing.T) {
	loc := pacific(t)
	w := octWeek(loc)

	res := Reconcile([]domain.Event{
		onProject(punch("Tony", domain.ActionIn, at(loc, 8, 8, 0)), "Garage Conversion"),
		onProject(punch("Tony", domain.ActionOut, at(loc, 8, 9, 0)), "Home Depot Run"),
	}, w, "")
	require.Len(t, res.Sessions, 1)
	assert.Equal(t, "Home Depot Run", res.Sessions[0].Project)
}

func TestReconcile_DoesNotMutateInput(t *testing.T) {
	loc := pacific(t)
	events := []domain.Event{
		punch("Tony", domain.ActionOut, at(loc, 8, 12, 0)),
		punch("Tony", domain.ActionIn, at(loc, 8, 9, 0)),
	}
	before := append([]domain.Event(nil), events...)
	_ = Reconcile(events, octWeek(loc), "")
	assert.Equal(t, before, events)
}

func TestReconcileAll_GroupsByWorkerInNameOrder(t *testing.T) {
	loc := pacific(t)
	w := octWeek(loc)

	events := []domain.Event{
		punch("Tony", domain.ActionIn, at(loc, 8, 9, 0)),
		punch("Hector", domain.ActionIn, at(loc, 8, 9, 30)),
		punch("Tony", domain.ActionOut, at(loc, 8, 10, 0)),
		punch("Hector", domain.ActionOut, at(loc, 8, 11, 30)),
	}

	res := ReconcileAll(events, w, "", "")
	require.Len(t, res.Sessions, 2)
	assert.Equal(t, "Hector", res.Sessions[0].Worker)
	assert.Equal(t, 120.0, res.Sessions[0].Minutes)
	assert.Equal(t, "Tony", res.Sessions[1].Worker)
	assert.Equal(t, 60.0, res.Sessions[1].Minutes)

	onlyTony := ReconcileAll(events, w, "", "Tony")
	require.Len(t, onlyTony.Sessions, 1)
	assert.Equal(t, "Tony", onlyTony.Sessions[0].Worker)
}
