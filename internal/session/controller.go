package session

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/pgmon/internal/config"
	"github.com/rileyhilliard/pgmon/internal/logger"
	"github.com/rileyhilliard/pgmon/internal/pg"
)

// pollInterval bounds how long the loop waits between cadence checks, so
// the refresh timer fires even when no input arrives.
const pollInterval = 50 * time.Millisecond

// Renderer paints a frame from the view model. It holds no state across
// frames beyond what each call is given.
type Renderer interface {
	Render(vm ViewModel, width, height int) string
}

// Model is the Bubble Tea model for the dashboard session. It exclusively
// owns all session state; fetches run on worker goroutines via commands and
// hand results back as messages, so the loop stays responsive during slow
// queries.
type Model struct {
	source   pg.DataSource
	renderer Renderer
	log      logger.Logger

	interval time.Duration
	rowCap   int

	state   State
	history *History

	lastRefresh time.Time
	refreshing  bool
	gen         int
	lastErr     string

	// initialFetch is the home tab's first refresh, built by NewModel so
	// its dispatch bookkeeping lives in the model Init hands to the
	// runtime, not in a value-receiver copy.
	initialFetch tea.Cmd

	width    int
	height   int
	quitting bool
}

// tickMsg signals a cadence check.
type tickMsg time.Time

// NewModel creates the session model. Config validation enforces the
// refresh bound before this is called; the interval is clamped here too
// so a misconfigured caller cannot spin the cadence.
func NewModel(source pg.DataSource, renderer Renderer, opts *config.Options) Model {
	interval := opts.RefreshInterval
	if interval < config.MinRefresh {
		interval = config.MinRefresh
	}
	if interval > config.MaxRefresh {
		interval = config.MaxRefresh
	}

	m := Model{
		source:   source,
		renderer: renderer,
		log:      logger.NewEnvLogger("[session]"),
		interval: interval,
		rowCap:   opts.Rows,
		state:    State{CurrentTab: HomeTab(opts.HomeView)},
		history:  NewHistory(HistorySize),
	}
	// Dispatch bookkeeping for the first refresh must land on the model
	// the runtime keeps, so the fetch is built here rather than in Init,
	// whose value receiver would discard it.
	m.initialFetch = m.startRefresh(time.Now())
	return m
}

// Init starts the cadence timer and hands the runtime the initial refresh
// prepared by NewModel, so the home tab never shows an empty frame longer
// than one fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tickCmd(), m.initialFetch)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		cmd := m.Tick(time.Time(msg))
		return m, tea.Batch(m.tickCmd(), cmd)

	case refreshResult:
		m.applyRefresh(msg)
	}

	return m, nil
}

// View renders the current frame from an immutable view model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderer.Render(m.ViewModel(), m.width, m.height)
}

// ShouldQuit reports whether the quit flag has been set. The transition is
// monotonic: once true it never reverts.
func (m Model) ShouldQuit() bool {
	return m.quitting
}

// Tick checks the refresh cadence against now and starts a refresh when
// due. A refresh already in flight is never overlapped; the expired tick
// is simply skipped and the next one retries.
func (m *Model) Tick(now time.Time) tea.Cmd {
	if now.Sub(m.lastRefresh) < m.interval {
		return nil
	}
	if m.refreshing {
		return nil
	}
	return m.startRefresh(now)
}

// SwitchTab activates the tab, resets the row selection, and triggers an
// immediate refresh bypassing the cadence timer, so a tab never shows
// stale data from a previously active tab. Switching to the already-active
// tab is a no-op. Any in-flight refresh is superseded: its result will
// carry a stale generation and be discarded on arrival.
func (m *Model) SwitchTab(tab Tab) tea.Cmd {
	if tab == m.state.CurrentTab {
		return nil
	}
	m.state.CurrentTab = tab
	m.state.Selected = 0
	m.gen++
	m.refreshing = false
	return m.startRefresh(time.Now())
}

// startRefresh dispatches a fetch worker for the current tab and resets
// the cadence clock.
func (m *Model) startRefresh(now time.Time) tea.Cmd {
	m.lastRefresh = now
	m.refreshing = true

	source := m.source
	tab := m.state.CurrentTab
	gen := m.gen
	timeout := 3 * m.interval

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return fetchTab(ctx, source, tab, gen)
	}
}

// applyRefresh folds a completed refresh into the session state. Stale
// results (superseded generation or a tab that is no longer active) are
// discarded. A failed refresh is surfaced on the status line but leaves
// the previous data and the history buffer untouched.
func (m *Model) applyRefresh(res refreshResult) {
	if res.gen != m.gen || res.tab != m.state.CurrentTab {
		m.log.Debug("discarding stale refresh for %s", res.tab)
		return
	}
	m.refreshing = false

	if res.err != nil {
		m.lastErr = res.err.Error()
		m.log.Error("refresh failed for %s: %v", res.tab, res.err)
		return
	}
	m.lastErr = ""

	if res.tab == TabActivity {
		m.state.Dashboard = *res.dashboard
		m.history.Push(res.dashboard.Sample())
		m.state.TableData = nil
	} else {
		m.state.TableData = res.table
	}

	// The collection may have shrunk under the selection.
	m.state.ClampSelection()
}

// tickCmd schedules the next cadence check.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
