// Package session implements the dashboard's session controller: it owns
// all mutable state, drives the refresh cadence, interprets input, keeps the
// bounded connection-count history, and produces the resampled series for
// the trend chart. Rendering and query execution live in internal/tui and
// internal/pg.
package session

// Tab identifies one of the dashboard views. Exactly one tab is active
// at a time.
type Tab int

const (
	TabActivity Tab = iota
	TabDatabase
	TabLocks
	TabIO
	TabStatements
)

// Tabs lists all tabs in display order.
var Tabs = []Tab{TabActivity, TabDatabase, TabLocks, TabIO, TabStatements}

// String returns the tab's display label.
func (t Tab) String() string {
	switch t {
	case TabActivity:
		return "Activity"
	case TabDatabase:
		return "Database"
	case TabLocks:
		return "Locks"
	case TabIO:
		return "IO"
	case TabStatements:
		return "Statements"
	default:
		return "unknown"
	}
}

// Headers returns the column headers for the tab's table view.
func (t Tab) Headers() []string {
	switch t {
	case TabActivity:
		return []string{"PID", "User", "DB", "State", "Query", "Start", "App", "Client"}
	case TabDatabase:
		return []string{"DB", "Backends", "Commits", "Rollbacks", "Read", "Hit", "Fetched", "Reset"}
	case TabLocks:
		return []string{"Relation", "Mode", "Granted", "PID"}
	case TabIO:
		return []string{"Backend", "Read", "Write", "Time Read", "Time Write"}
	case TabStatements:
		return []string{"Query", "Total", "Mean", "Calls", "Read", "Write"}
	default:
		return nil
	}
}

// HomeTab maps the configured home view name onto its tab. Anything other
// than "statements" starts on Activity.
func HomeTab(view string) Tab {
	if view == "statements" {
		return TabStatements
	}
	return TabActivity
}
