package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/rileyhilliard/pgmon/internal/config"
	"github.com/rileyhilliard/pgmon/internal/pg"
	"github.com/rileyhilliard/pgmon/internal/session"
	"github.com/rileyhilliard/pgmon/internal/tui"
)

// dashboardCommand loads the configuration, connects, and runs the
// dashboard until the user quits.
func dashboardCommand(configPath string, flags *pflag.FlagSet) error {
	opts, err := config.Load(configPath, flags)
	if err != nil {
		return err
	}

	ctx := context.Background()
	source, err := pg.Connect(ctx, opts.DSN, opts.Rows, opts.Sort)
	if err != nil {
		return err
	}
	defer source.Close()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return printSnapshot(ctx, os.Stdout, source)
	}

	model := session.NewModel(source, tui.NewRenderer(), opts)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// snapshotWidth sizes the non-interactive backend listing.
const snapshotWidth = 160

// printSnapshot writes a one-shot backend listing for non-interactive use.
func printSnapshot(ctx context.Context, w *os.File, source pg.DataSource) error {
	rows, err := source.Activity(ctx)
	if err != nil {
		return err
	}

	headers := session.TabActivity.Headers()
	table := tui.RenderTable(headers, rows, -1, snapshotWidth, len(rows)+1)
	_, err = fmt.Fprintln(w, table)
	return err
}
