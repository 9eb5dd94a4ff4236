package timesheet

import (
	"sort"

	"github.com/alexanderramin/crewclock/internal/domain"
)

// DefaultLimit caps the entry list when the caller gives no limit.
const DefaultLimit = 10

type ViewFilter struct {
	Worker    string
	Project   string
	Limit     int
	AdminName string
}

type View struct {
	Entries []domain.Event `json:"entries"`
	Workers []string       `json:"workers"`
}

// FilterEntries applies the worker and project filters to window events,
// orders them by timestamp and truncates to the limit. Workers lists every
// distinct worker seen, regardless of filters.
func FilterEntries(events []domain.Event, f ViewFilter) View {
	worker := workerFilter(f.Worker, f.AdminName)
	project := projectFilter(f.Project)
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	seen := make(map[string]struct{})
	var filtered []domain.Event
	for _, e := range sortByTimestamp(events) {
		seen[e.Worker] = struct{}{}
		if worker != "" && e.Worker != worker {
			continue
		}
		if project != "" && e.Project != project {
			continue
		}
		filtered = append(filtered, e)
	}
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}

	workers := make([]string, 0, len(seen))
	for w := range seen {
		workers = append(workers, w)
	}
	sort.Strings(workers)

	if filtered == nil {
		filtered = []domain.Event{}
	}
	return View{Entries: filtered, Workers: workers}
}

// workerFilter maps "", "All" and the admin identity to no restriction.
func workerFilter(worker, adminName string) string {
	canon := domain.CanonicalWorker(worker)
	if canon == "" || canon == domain.AllFilter {
		return ""
	}
	if adminName != "" && canon == domain.CanonicalWorker(adminName) {
		return ""
	}
	return canon
}

func projectFilter(project string) string {
	if project == domain.AllFilter {
		return ""
	}
	return project
}
