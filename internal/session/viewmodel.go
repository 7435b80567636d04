package session

import "github.com/rileyhilliard/pgmon/internal/pg"

// FooterHint is the static key-binding reminder shown when no query text
// applies to the selected row.
const FooterHint = "q:Quit | 1-5:Switch Tab | ↑↓:Navigate"

// ViewModel is the immutable per-frame snapshot handed to the render
// collaborator. Building it never mutates session state.
type ViewModel struct {
	Tab       Tab
	TabLabels []string
	Headers   []string
	Rows      [][]string
	Selected  int
	Footer    string
	Err       string

	// Dashboard is non-nil only on the Activity tab.
	Dashboard *DashboardView
}

// DashboardView is the Activity tab's render input: the latest snapshot
// plus the history series the chart resamples.
type DashboardView struct {
	ConnByState   []pg.StateCount
	ActiveQueries [][]string
	Perf          pg.PerfCounters
	Samples       []Sample
	Last          Sample
	AxisMax       float64
	RowCap        int
}

// ViewModel builds the frame snapshot for the renderer.
func (m Model) ViewModel() ViewModel {
	labels := make([]string, len(Tabs))
	for i, t := range Tabs {
		labels[i] = t.String()
	}

	vm := ViewModel{
		Tab:       m.state.CurrentTab,
		TabLabels: labels,
		Headers:   m.state.CurrentTab.Headers(),
		Rows:      copyRows(m.state.ActiveRows()),
		Selected:  m.state.Selected,
		Err:       m.lastErr,
	}
	vm.Footer = m.footerText(vm.Rows)

	if m.state.CurrentTab == TabActivity {
		d := m.state.Dashboard
		vm.Dashboard = &DashboardView{
			ConnByState:   append([]pg.StateCount(nil), d.ConnByState...),
			ActiveQueries: copyRows(d.ActiveQueries),
			Perf:          d.Perf,
			Samples:       m.history.Samples(),
			Last:          m.history.Last(),
			AxisMax:       m.history.AxisMax(),
			RowCap:        m.rowCap,
		}
	}

	return vm
}

// footerText returns the full query text under the selected row where one
// exists (Activity's query column, Statements' first column), otherwise
// the key-binding hint.
func (m Model) footerText(rows [][]string) string {
	if m.state.Selected < len(rows) {
		row := rows[m.state.Selected]
		switch m.state.CurrentTab {
		case TabActivity:
			if len(row) > 4 {
				return "QUERY: " + row[4]
			}
		case TabStatements:
			// Single-column rows are placeholder notices, not statements.
			if len(row) > 1 {
				return "QUERY: " + row[0]
			}
		}
	}
	return FooterHint
}

func copyRows(rows [][]string) [][]string {
	if rows == nil {
		return nil
	}
	out := make([][]string, len(rows))
	copy(out, rows)
	return out
}
