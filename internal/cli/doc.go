// Package cli implements the pgmon command-line interface.
//
// The package is organized around Cobra commands, with the root command
// doing the real work: it loads configuration, opens the connection pool,
// and hands control to the Bubble Tea session in internal/session.
//
// # Command Structure
//
//	pgmon               - Run the monitoring dashboard
//	pgmon init          - Create a .pgmon.yaml config interactively
//	pgmon version       - Print version information
//	pgmon completion    - Generate shell completion scripts
//
// # Configuration
//
// Settings resolve in precedence order: flags, PGMON_* environment
// variables, a config file (--config, ./.pgmon.yaml, or
// ~/.config/pgmon/config.yaml), then built-in defaults. The heavy
// lifting lives in internal/config; commands only pass their flag set
// through to config.Load.
//
// # Non-interactive mode
//
// When stdout is not a terminal the root command prints a one-shot
// backend listing instead of starting the TUI, so pgmon can be piped
// or run from cron.
package cli
