package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/pgmon/internal/session"
)

func TestRenderBrailleChartEmpty(t *testing.T) {
	assert.Equal(t, "", RenderBrailleChart(nil, 20, 4, 10, ColorAccent))
	assert.Equal(t, "", RenderBrailleChart([]session.Sample{{Total: 1}}, 0, 4, 10, ColorAccent))
	assert.Equal(t, "", RenderBrailleChart([]session.Sample{{Total: 1}}, 20, 0, 10, ColorAccent))
}

func TestRenderBrailleChartDimensions(t *testing.T) {
	samples := []session.Sample{
		{Total: 2}, {Total: 5}, {Total: 9}, {Total: 4},
	}

	out := RenderBrailleChart(samples, 20, 4, 10, ColorAccent)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		assert.Equal(t, 20, len([]rune(line)), "every row spans the full chart width")
	}
}

func TestRenderBrailleChartFullScale(t *testing.T) {
	// A flat series at the axis ceiling fills every dot.
	samples := []session.Sample{{Total: 10}, {Total: 10}}
	out := RenderBrailleChart(samples, 4, 2, 10, ColorAccent)

	full := string(rune(brailleBase | 0xFF))
	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, strings.Repeat(full, 4), line)
	}
}

func TestRenderBrailleChartZeroSeries(t *testing.T) {
	// A flat zero series renders only empty braille cells.
	samples := []session.Sample{{Total: 0}, {Total: 0}}
	out := RenderBrailleChart(samples, 4, 2, 10, ColorAccent)

	empty := string(brailleBase)
	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, strings.Repeat(empty, 4), line)
	}
}

func TestRenderBrailleChartSpansWidth(t *testing.T) {
	// two samples, upscaled across the chart: the left edge carries the low
	// value, the right edge the high one.
	samples := []session.Sample{{Total: 1}, {Total: 10}}
	out := RenderBrailleChart(samples, 10, 2, 10, ColorAccent)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)

	top := []rune(lines[0])
	// The series reaches the ceiling on the right, so the top row's last
	// cell has dots set while its first cell stays empty.
	assert.Equal(t, brailleBase, top[0])
	assert.NotEqual(t, brailleBase, top[len(top)-1])
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 0, clampInt(-5, 10))
	assert.Equal(t, 10, clampInt(15, 10))
	assert.Equal(t, 7, clampInt(7, 10))
}
