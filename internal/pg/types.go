// Package pg implements the data-source adapter for the dashboard. It runs
// a fixed set of monitoring queries against PostgreSQL and maps result rows
// into display-ready strings. All logic beyond query execution and string
// formatting lives in the session core.
package pg

import "context"

// StateCount is one (backend state, count) pair from pg_stat_activity,
// ordered by the fixed state priority ranking.
type StateCount struct {
	State string
	Count int64
}

// PerfCounters holds the aggregate performance counters shown on the
// Activity dashboard.
type PerfCounters struct {
	CacheHitPct    float64
	Commits        int64
	Rollbacks      int64
	Backends       int64
	MaxConnections int64
}

// DataSource is the fetch contract consumed by the refresh orchestrator.
// Every tabular method returns rows of display-ready strings with a fixed
// column count for that dataset. Calls may fail with a CONN or QUERY error;
// the orchestrator does not retry.
type DataSource interface {
	// ConnectionStates returns backend counts grouped by state, ordered by
	// the priority ranking: active, idle in transaction, idle in transaction
	// (aborted), idle, fastpath function call, disabled, then anything else.
	ConnectionStates(ctx context.Context) ([]StateCount, error)

	// ActiveQueries returns currently executing queries, 5 columns per row:
	// pid, user, database, duration as HH:MM:SS, single-line query text.
	ActiveQueries(ctx context.Context) ([][]string, error)

	// PerfCounters returns the aggregate counters for the stats panel.
	PerfCounters(ctx context.Context) (PerfCounters, error)

	// Activity returns the full backend listing, 8 columns per row: pid,
	// user, database, state, query, start time (ISO-8601), application
	// name, client address.
	Activity(ctx context.Context) ([][]string, error)

	// Databases returns per-database statistics, 8 columns per row.
	Databases(ctx context.Context) ([][]string, error)

	// Locks returns current locks, 4 columns per row.
	Locks(ctx context.Context) ([][]string, error)

	// IOStats returns pg_stat_io counters, 5 columns per row, or a single
	// 1-column sentinel row when the view is unavailable (PG < 16).
	IOStats(ctx context.Context) ([][]string, error)

	// Statements returns pg_stat_statements rows, 6 columns per row, or a
	// 1-column sentinel row when the extension is missing or not loaded.
	Statements(ctx context.Context) ([][]string, error)

	// Close releases the underlying connection pool.
	Close()
}
