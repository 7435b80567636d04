package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// minColumnWidth keeps narrow terminals from collapsing columns entirely.
const minColumnWidth = 6

// columnWeights apportions the available width across a tab's columns.
// Query-text columns get the lion's share; identifiers stay compact.
var columnWeights = map[string]int{
	"Query":      6,
	"Relation":   3,
	"Mode":       2,
	"User":       2,
	"DB":         2,
	"App":        2,
	"Client":     2,
	"Start":      3,
	"Backend":    3,
	"Time Read":  2,
	"Time Write": 2,
}

func columnWeight(title string) int {
	if w, ok := columnWeights[title]; ok {
		return w
	}
	return 1
}

// RenderTable renders rows under headers as a non-interactive table sized to
// the given dimensions, with the selected row highlighted.
func RenderTable(headers []string, rows [][]string, selected, width, height int) string {
	if len(headers) == 0 {
		return ""
	}

	totalWeight := 0
	for _, h := range headers {
		totalWeight += columnWeight(h)
	}

	// Leave room for the table's per-column padding.
	usable := width - 2*len(headers)
	if usable < len(headers)*minColumnWidth {
		usable = len(headers) * minColumnWidth
	}

	cols := make([]table.Column, len(headers))
	for i, h := range headers {
		w := usable * columnWeight(h) / totalWeight
		if w < minColumnWidth {
			w = minColumnWidth
		}
		cols[i] = table.Column{Title: h, Width: w}
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	if height < 2 {
		height = 2
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(tableRows),
		table.WithFocused(false),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorAccent)
	s.Cell = s.Cell.
		Foreground(ColorTextPrimary)
	s.Selected = s.Selected.
		Foreground(ColorTextPrimary).
		Background(ColorBorder).
		Bold(false)
	t.SetStyles(s)

	if selected >= 0 && selected < len(tableRows) {
		t.SetCursor(selected)
	}

	return t.View()
}
