package session

import "github.com/rileyhilliard/pgmon/internal/pg"

// DashboardSnapshot is the richer state bundle backing the Activity tab.
// It is replaced atomically by a successful Activity refresh; a failed
// refresh never exposes partial results.
type DashboardSnapshot struct {
	ConnByState   []pg.StateCount
	ActiveQueries [][]string
	Perf          pg.PerfCounters
}

// ActiveCount returns the count recorded for the "active" state label,
// 0 when absent.
func (d *DashboardSnapshot) ActiveCount() int64 {
	return d.stateCount("active")
}

// IdleCount returns the count recorded for the "idle" state label,
// 0 when absent.
func (d *DashboardSnapshot) IdleCount() int64 {
	return d.stateCount("idle")
}

// TotalCount returns the sum of all per-state counts.
func (d *DashboardSnapshot) TotalCount() int64 {
	var total int64
	for _, sc := range d.ConnByState {
		total += sc.Count
	}
	return total
}

// Sample derives the history sample recorded for this snapshot.
func (d *DashboardSnapshot) Sample() Sample {
	return Sample{
		Active: d.ActiveCount(),
		Idle:   d.IdleCount(),
		Total:  d.TotalCount(),
	}
}

func (d *DashboardSnapshot) stateCount(label string) int64 {
	for _, sc := range d.ConnByState {
		if sc.State == label {
			return sc.Count
		}
	}
	return 0
}

// State holds the mutable session state owned by the controller. It is
// created once at startup and mutated only on the controller's goroutine.
type State struct {
	CurrentTab Tab

	// TableData backs the non-Activity tabs and is replaced wholesale on
	// every refresh of such a tab.
	TableData [][]string

	// Dashboard backs the Activity tab.
	Dashboard DashboardSnapshot

	// Selected is the zero-based row selection into the active collection.
	// Invariant: 0 <= Selected < len when len > 0, Selected == 0 otherwise.
	Selected int
}

// ActiveRows returns the row collection navigation operates on: the
// active-queries list on Activity, the generic table elsewhere.
func (s *State) ActiveRows() [][]string {
	if s.CurrentTab == TabActivity {
		return s.Dashboard.ActiveQueries
	}
	return s.TableData
}

// MoveDown advances the selection by one if a next row exists.
func (s *State) MoveDown() {
	if n := len(s.ActiveRows()); s.Selected+1 < n {
		s.Selected++
	}
}

// MoveUp retreats the selection by one if not already at the top.
func (s *State) MoveUp() {
	if s.Selected > 0 {
		s.Selected--
	}
}

// ClampSelection restores the selection invariant after the backing
// collection may have shrunk.
func (s *State) ClampSelection() {
	n := len(s.ActiveRows())
	if n == 0 {
		s.Selected = 0
		return
	}
	if s.Selected >= n {
		s.Selected = n - 1
	}
}
