package session

import (
	"context"

	"github.com/rileyhilliard/pgmon/internal/pg"
)

// refreshResult carries the outcome of one refresh back to the controller.
// gen is the refresh generation at dispatch time; a result whose generation
// no longer matches the controller's is stale and gets discarded, never
// merged.
type refreshResult struct {
	tab       Tab
	gen       int
	table     [][]string
	dashboard *DashboardSnapshot
	err       error
}

// fetchTab runs the fetches appropriate to the tab. For Activity the three
// datasets are fetched as one logical refresh: the result is built into a
// candidate snapshot and returned only when all three succeed, so a partial
// failure leaves the caller's state untouched. Other tabs fetch exactly one
// dataset.
func fetchTab(ctx context.Context, src pg.DataSource, tab Tab, gen int) refreshResult {
	res := refreshResult{tab: tab, gen: gen}

	if tab == TabActivity {
		states, err := src.ConnectionStates(ctx)
		if err != nil {
			res.err = err
			return res
		}
		queries, err := src.ActiveQueries(ctx)
		if err != nil {
			res.err = err
			return res
		}
		perf, err := src.PerfCounters(ctx)
		if err != nil {
			res.err = err
			return res
		}
		res.dashboard = &DashboardSnapshot{
			ConnByState:   states,
			ActiveQueries: queries,
			Perf:          perf,
		}
		return res
	}

	var err error
	switch tab {
	case TabDatabase:
		res.table, err = src.Databases(ctx)
	case TabLocks:
		res.table, err = src.Locks(ctx)
	case TabIO:
		res.table, err = src.IOStats(ctx)
	case TabStatements:
		res.table, err = src.Statements(ctx)
	}
	res.err = err
	return res
}
