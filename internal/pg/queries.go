package pg

// SQL text for the monitoring queries. The column order in each query is the
// column contract for the corresponding DataSource method.

const connStatesQuery = `
SELECT state, COUNT(*)::bigint
FROM pg_stat_activity
WHERE state IS NOT NULL
GROUP BY state
ORDER BY CASE state
    WHEN 'active' THEN 0
    WHEN 'idle in transaction' THEN 1
    WHEN 'idle in transaction (aborted)' THEN 2
    WHEN 'idle' THEN 3
    WHEN 'fastpath function call' THEN 4
    WHEN 'disabled' THEN 5
    ELSE 6
END
`

const activeQueriesQuery = `
SELECT
    pid,
    COALESCE(usename, ''),
    COALESCE(datname, ''),
    COALESCE(EXTRACT(EPOCH FROM now() - query_start)::bigint, 0),
    COALESCE(query, '')
FROM pg_stat_activity
WHERE state = 'active'
  AND pid <> pg_backend_pid()
ORDER BY COALESCE(now() - query_start, '0s'::interval) DESC
LIMIT $1
`

const perfStatsQuery = `
SELECT
    COALESCE(ROUND(100.0 * sum(blks_hit) / NULLIF(sum(blks_hit) + sum(blks_read), 0), 1), 0)::float8,
    COALESCE(sum(xact_commit), 0)::bigint,
    COALESCE(sum(xact_rollback), 0)::bigint,
    (SELECT count(*) FROM pg_stat_activity)::bigint,
    (SELECT setting::bigint FROM pg_settings WHERE name = 'max_connections')
FROM pg_stat_database
`

const activityQuery = `
SELECT
    pid,
    usename,
    datname,
    state,
    query,
    query_start,
    application_name,
    client_addr::text
FROM pg_stat_activity
WHERE pid <> pg_backend_pid()
ORDER BY COALESCE(now() - query_start, '0s'::interval) DESC
LIMIT 500
`

const databaseQuery = `
SELECT
    datname,
    numbackends,
    xact_commit,
    xact_rollback,
    blks_read,
    blks_hit,
    tup_fetched,
    stats_reset
FROM pg_stat_database
ORDER BY xact_commit DESC
`

const locksQuery = `
SELECT
    relation::regclass::text,
    mode,
    granted,
    pid
FROM pg_locks
LIMIT 500
`

const ioQuery = `
SELECT
    backend_type,
    COALESCE(reads, 0) AS count_read,
    COALESCE(writes, 0) AS count_write,
    COALESCE(read_time, 0) AS timing_read,
    COALESCE(write_time, 0) AS timing_write
FROM pg_stat_io
LIMIT 500
`

// statementsQueryFmt takes the ORDER BY column resolved by statementsOrder.
const statementsQueryFmt = `
SELECT
    query,
    total_exec_time AS total_time,
    mean_exec_time AS mean_time,
    calls,
    shared_blk_read_time AS blk_read_time,
    shared_blk_write_time AS blk_write_time
FROM pg_stat_statements
ORDER BY %s DESC
LIMIT 500
`

const extensionExistsQuery = `SELECT 1 FROM pg_extension WHERE extname = $1`

const viewExistsQuery = `SELECT 1 FROM pg_views WHERE viewname = $1`

// statementsOrder maps the configured sort column onto a pg_stat_statements
// ORDER BY expression. The default "longest_running" sorts by cumulative time,
// which is the closest cumulative analog for statement statistics.
func statementsOrder(sort string) string {
	switch sort {
	case "mean_time":
		return "mean_exec_time"
	case "calls":
		return "calls"
	default: // total_time, longest_running
		return "total_exec_time"
	}
}
