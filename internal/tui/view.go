// Package tui renders the dashboard frames. It is a pure function of the
// session's view model: it holds no state of its own and never talks to
// PostgreSQL.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/pgmon/internal/session"
)

// Renderer paints dashboard frames from view models.
type Renderer struct{}

// NewRenderer creates the frame renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces one full frame: tab strip, tab content, then the footer.
func (r *Renderer) Render(vm session.ViewModel, width, height int) string {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	var b strings.Builder

	b.WriteString(renderTabStrip(vm))
	b.WriteString("\n")

	// Chrome: tab strip, blank, footer, optional error line.
	contentHeight := height - 3
	if vm.Err != "" {
		contentHeight--
	}
	if contentHeight < 4 {
		contentHeight = 4
	}

	if vm.Tab == session.TabActivity && vm.Dashboard != nil {
		b.WriteString(renderDashboard(vm, width, contentHeight))
	} else {
		b.WriteString(RenderTable(vm.Headers, vm.Rows, vm.Selected, width, contentHeight))
	}
	b.WriteString("\n")

	if vm.Err != "" {
		b.WriteString(ErrorStyle.Render("ERROR: " + vm.Err))
		b.WriteString("\n")
	}
	b.WriteString(FooterStyle.Render(truncate(vm.Footer, width-2)))

	return b.String()
}

// renderTabStrip renders the numbered tab labels with the active tab
// highlighted.
func renderTabStrip(vm session.ViewModel) string {
	parts := make([]string, len(vm.TabLabels))
	for i, label := range vm.TabLabels {
		text := fmt.Sprintf("%d:%s", i+1, label)
		if session.Tab(i) == vm.Tab {
			parts[i] = TabActiveStyle.Render(text)
		} else {
			parts[i] = TabInactiveStyle.Render(text)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// truncate shortens s to at most width cells, ellipsis included.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
