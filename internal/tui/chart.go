package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/pgmon/internal/session"
)

// Braille character rendering for the connection trend chart.
//
// Braille patterns use a 2x4 dot matrix per character, so each character
// cell carries 2 horizontal points at 4 vertical levels. Unicode braille
// starts at U+2800 (empty); bit 0 = dot 1 through bit 7 = dot 8.

const brailleBase = '⠀'

// brailleDots maps [row][col] to the bit offset for the braille pattern,
// row 0-3 top to bottom, col 0-1 left to right.
var brailleDots = [4][2]uint8{
	{0, 3},
	{1, 4},
	{2, 5},
	{6, 7},
}

func clampInt(val, maxVal int) int {
	if val < 0 {
		return 0
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// RenderBrailleChart plots the series as a filled braille graph, width
// characters wide and height rows tall, scaled against axisMax. The series
// is resampled to exactly 2*width points so the full history always spans
// the full chart width.
func RenderBrailleChart(samples []session.Sample, width, height int, axisMax float64, color lipgloss.Color) string {
	if len(samples) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	if axisMax <= 0 {
		axisMax = 1
	}

	points := session.Resample(samples, width*2, func(s session.Sample) float64 {
		return float64(s.Total)
	})

	totalDots := height * 4

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = brailleBase
		}
	}

	for i, p := range points {
		normalized := p.Y / axisMax
		dotHeight := clampInt(int(normalized*float64(totalDots)), totalDots)
		charCol := i / 2
		if charCol >= width {
			continue
		}
		subCol := i % 2

		// Fill dots from the bottom up.
		for dot := 0; dot < dotHeight; dot++ {
			row := height - 1 - (dot / 4)
			if row < 0 {
				continue
			}
			subRow := 3 - (dot % 4)
			grid[row][charCol] |= rune(1 << brailleDots[subRow][subCol])
		}
	}

	style := lipgloss.NewStyle().Foreground(color)
	lines := make([]string, height)
	for i, row := range grid {
		lines[i] = style.Render(string(row))
	}
	return strings.Join(lines, "\n")
}
