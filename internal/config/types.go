package config

import "time"

// Bounds for validated options.
const (
	// MinRefresh and MaxRefresh bound the cadence between automatic refreshes.
	MinRefresh = 200 * time.Millisecond
	MaxRefresh = 60 * time.Second

	// MinRows and MaxRows bound the advisory row cap for table views.
	MinRows = 1
	MaxRows = 100
)

// Defaults applied when neither flag, env, nor config file set a value.
const (
	DefaultRefresh  = time.Second
	DefaultRows     = 10
	DefaultHomeView = "activity"
	DefaultSort     = "longest_running"
)

// HomeViews are the tabs the dashboard may start on.
var HomeViews = []string{"activity", "statements"}

// SortColumns are the accepted sort choices for the Statements view.
// Sorting is applied by the data source's query, not by the session core.
var SortColumns = []string{"total_time", "mean_time", "calls", "longest_running"}

// Options holds the validated startup configuration for the dashboard.
type Options struct {
	// DSN is the PostgreSQL connection string. Opaque to everything but the
	// data source; the session core never parses it.
	DSN string `yaml:"dsn" mapstructure:"dsn"`

	// RefreshInterval is the minimum wall-clock spacing between automatic
	// refreshes. Bounded to [MinRefresh, MaxRefresh].
	RefreshInterval time.Duration `yaml:"-" mapstructure:"-"`

	// RefreshMs mirrors RefreshInterval for file/flag representation.
	RefreshMs int `yaml:"refresh_ms" mapstructure:"refresh_ms"`

	// Rows is the advisory maximum row count for table views. It caps what
	// is fetched for display; it never truncates history.
	Rows int `yaml:"rows" mapstructure:"rows"`

	// HomeView selects the tab shown on startup.
	HomeView string `yaml:"home_view" mapstructure:"home_view"`

	// Sort is the default sort column for the Statements view.
	Sort string `yaml:"sort" mapstructure:"sort"`
}
