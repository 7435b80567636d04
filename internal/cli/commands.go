package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/pgmon/internal/config"
)

// Command-specific flags
var (
	configFlag  string
	verboseFlag bool
	initForce   bool
)

// rootCmd runs the dashboard itself; pgmon has no separate "start"
// subcommand.
var rootCmd = &cobra.Command{
	Use:   "pgmon",
	Short: "PostgreSQL monitoring dashboard for your terminal",
	Long: `A terminal dashboard for live PostgreSQL monitoring.

Connects to the database named by --dsn (or PGMON_DSN) and cycles five
views: connection activity, per-database statistics, locks, I/O counters,
and pg_stat_statements. Press 1-5 to switch views, j/k or the arrow keys
to move the row selection, and q to quit.

When stdout is not a terminal, pgmon prints a one-shot backend listing
instead of starting the dashboard, so output can be piped or collected
from cron.

Examples:
  pgmon --dsn postgres://localhost/mydb
  pgmon -d postgres://localhost/mydb -r 500 -n 20
  pgmon --home-view statements --sort calls
  PGMON_DSN=postgres://localhost/mydb pgmon > activity.txt`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			os.Setenv("PGMON_DEBUG", "1")
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(configFlag, cmd.Flags())
	},
}

// initCmd creates a new .pgmon.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .pgmon.yaml configuration",
	Long: `Initialize a new pgmon configuration file.

Creates a .pgmon.yaml file in the current directory, guiding you through
the connection string and refresh settings with interactive prompts.

Examples:
  pgmon init
  pgmon init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(InitOptions{Force: initForce})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")

	rootCmd.Flags().StringP("dsn", "d", "", "PostgreSQL connection string (env: PGMON_DSN)")
	rootCmd.Flags().IntP("refresh-ms", "r", int(config.DefaultRefresh/time.Millisecond),
		fmt.Sprintf("refresh interval in milliseconds (%d-%d)",
			int(config.MinRefresh/time.Millisecond), int(config.MaxRefresh/time.Millisecond)))
	rootCmd.Flags().IntP("rows", "n", config.DefaultRows,
		fmt.Sprintf("max rows per table view (%d-%d)", config.MinRows, config.MaxRows))
	rootCmd.Flags().String("home-view", config.DefaultHomeView,
		"view shown at startup (activity or statements)")
	rootCmd.Flags().StringP("sort", "s", config.DefaultSort,
		"sort column for the statements view (total_time, mean_time, calls, longest_running)")

	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
