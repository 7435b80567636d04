package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/pgmon/internal/session"
)

// activeQueryHeaders are the columns of the Activity tab's query table.
var activeQueryHeaders = []string{"PID", "User", "DB", "Duration", "Query"}

// renderDashboard renders the Activity tab: the connection trend chart next
// to the stats panel, with the active-query table underneath.
func renderDashboard(vm session.ViewModel, width, height int) string {
	d := vm.Dashboard

	// Top half: chart (60%) beside stats (40%).
	topHeight := height / 2
	if topHeight < 6 {
		topHeight = 6
	}
	chartWidth := width * 6 / 10
	statsWidth := width - chartWidth
	if statsWidth < 24 {
		statsWidth = 24
	}

	chart := renderChartPanel(d, chartWidth, topHeight)
	stats := renderStatsPanel(d, statsWidth, topHeight)
	top := lipgloss.JoinHorizontal(lipgloss.Top, chart, stats)

	tableHeight := height - lipgloss.Height(top) - 1
	if tableHeight < 3 {
		tableHeight = 3
	}

	var b strings.Builder
	b.WriteString(top)
	b.WriteString("\n")
	b.WriteString(TitleStyle.Render(
		fmt.Sprintf("Active Queries (%d) | top-n: %d", len(vm.Rows), d.RowCap)))
	b.WriteString("\n")
	b.WriteString(RenderTable(activeQueryHeaders, vm.Rows, vm.Selected, width, tableHeight))
	return b.String()
}

// renderChartPanel renders the bordered connection-count trend chart.
func renderChartPanel(d *session.DashboardView, width, height int) string {
	innerWidth := width - 4
	innerHeight := height - 3
	if innerWidth < 10 {
		innerWidth = 10
	}
	if innerHeight < 3 {
		innerHeight = 3
	}

	title := TitleStyle.Render("Connections") +
		LabelStyle.Render(fmt.Sprintf("  0-%d", int(d.AxisMax)))

	var chart string
	if len(d.Samples) == 0 {
		chart = LabelStyle.Render("collecting…")
	} else {
		chart = RenderBrailleChart(d.Samples, innerWidth, innerHeight, d.AxisMax, ColorAccent)
	}

	return PanelStyle.Width(width - 2).Render(title + "\n" + chart)
}

// stateLabel shortens the verbose backend state names for the panel.
func stateLabel(state string) string {
	switch state {
	case "idle in transaction":
		return "idle in tx"
	case "idle in transaction (aborted)":
		return "idle in tx (abort)"
	case "fastpath function call":
		return "fastpath"
	default:
		return state
	}
}

// stateColor colors each backend state by how much attention it deserves.
func stateColor(state string) lipgloss.Color {
	switch state {
	case "active":
		return ColorHealthy
	case "idle in transaction":
		return ColorWarning
	case "idle in transaction (aborted)":
		return ColorCritical
	case "idle":
		return ColorAccent
	default:
		return ColorTextMuted
	}
}

// renderStatsPanel renders the per-state connection counts and the
// aggregate performance counters, severity-colored.
func renderStatsPanel(d *session.DashboardView, width, height int) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Server Stats"))
	b.WriteString("\n")

	var total int64
	for _, sc := range d.ConnByState {
		total += sc.Count
		b.WriteString(statLine(stateLabel(sc.State), fmt.Sprintf("%4d", sc.Count),
			lipgloss.NewStyle().Foreground(stateColor(sc.State)).Bold(true)))
	}
	b.WriteString(LabelStyle.Render("────────────────────────"))
	b.WriteString("\n")
	b.WriteString(statLine("total", fmt.Sprintf("%4d", total), ValueStyle.Bold(true)))

	last := d.Last
	b.WriteString(statLine("idle %", fmt.Sprintf("%d%%", last.IdlePct()),
		SeverityStyle(last.IdleSeverity())))

	b.WriteString("\n")

	perf := d.Perf
	b.WriteString(statLine("cache hit", fmt.Sprintf("%.1f%%", perf.CacheHitPct),
		SeverityStyle(session.CacheHitSeverity(perf.CacheHitPct)).Bold(true)))
	b.WriteString(statLine("commits", fmt.Sprintf("%d", perf.Commits), ValueStyle))

	rollbackStyle := LabelStyle
	if perf.Rollbacks > 0 {
		rollbackStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	}
	b.WriteString(statLine("rollbacks", fmt.Sprintf("%d", perf.Rollbacks), rollbackStyle))

	usage := session.ConnUsagePct(perf.Backends, perf.MaxConnections)
	b.WriteString(statLine(
		"max conns",
		fmt.Sprintf("%d / %d (%d%%)", perf.Backends, perf.MaxConnections, usage),
		SeverityStyle(session.ConnUsageSeverity(usage)).Bold(true),
	))

	return PanelStyle.Width(width - 2).Height(height - 2).Render(strings.TrimRight(b.String(), "\n"))
}

// statLine renders one "label  value" stats row.
func statLine(label, value string, valueStyle lipgloss.Style) string {
	return fmt.Sprintf("%s %s\n",
		LabelStyle.Render(fmt.Sprintf("%-12s", label)),
		valueStyle.Render(value))
}
