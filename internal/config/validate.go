package config

import (
	"fmt"
	"time"

	"github.com/rileyhilliard/pgmon/internal/errors"
)

// Validate checks the options and returns structured error messages.
// Validation failures are fatal before the dashboard starts.
func Validate(opts *Options) error {
	if opts.DSN == "" {
		return errors.New(errors.ErrConfig,
			"No PostgreSQL DSN configured",
			"Pass --dsn, set PGMON_DSN, or add 'dsn:' to your config file")
	}

	if opts.RefreshInterval < MinRefresh || opts.RefreshInterval > MaxRefresh {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Refresh interval %dms is out of range", opts.RefreshInterval/time.Millisecond),
			fmt.Sprintf("Use a value between %dms and %dms",
				MinRefresh/time.Millisecond, MaxRefresh/time.Millisecond))
	}

	if opts.Rows < MinRows || opts.Rows > MaxRows {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Row cap %d is out of range", opts.Rows),
			fmt.Sprintf("Use a value between %d and %d", MinRows, MaxRows))
	}

	if !contains(HomeViews, opts.HomeView) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown home view '%s'", opts.HomeView),
			"Valid views: activity, statements")
	}

	if !contains(SortColumns, opts.Sort) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown sort column '%s'", opts.Sort),
			"Valid columns: total_time, mean_time, calls, longest_running")
	}

	return nil
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
