package session

// HistorySize is the number of connection-count samples retained for the
// trend chart.
const HistorySize = 600

// minPeakTotal floors the chart's observed peak so a near-empty server does
// not produce a degenerate vertical scale.
const minPeakTotal = 10

// Sample is one connection-count observation, recorded once per Activity
// refresh.
type Sample struct {
	Active int64
	Idle   int64
	Total  int64
}

// History is a fixed-capacity ring buffer of samples. Insertion beyond
// capacity evicts the oldest sample before appending. It is append-only:
// nothing else ever mutates stored samples.
type History struct {
	data  []Sample
	head  int
	count int
	size  int
}

// NewHistory creates a ring buffer with the given capacity.
func NewHistory(size int) *History {
	if size <= 0 {
		size = HistorySize
	}
	return &History{
		data: make([]Sample, size),
		size: size,
	}
}

// Push appends a sample, evicting the oldest when full. Amortized O(1).
func (h *History) Push(s Sample) {
	h.data[h.head] = s
	h.head = (h.head + 1) % h.size
	if h.count < h.size {
		h.count++
	}
}

// Len returns the number of stored samples.
func (h *History) Len() int {
	return h.count
}

// Cap returns the buffer capacity.
func (h *History) Cap() int {
	return h.size
}

// Samples returns the stored samples in insertion order (oldest first).
func (h *History) Samples() []Sample {
	if h.count == 0 {
		return nil
	}
	out := make([]Sample, h.count)
	start := (h.head - h.count + h.size) % h.size
	for i := 0; i < h.count; i++ {
		out[i] = h.data[(start+i)%h.size]
	}
	return out
}

// Last returns the most recent sample, or a zero sample when empty.
func (h *History) Last() Sample {
	if h.count == 0 {
		return Sample{}
	}
	return h.data[(h.head-1+h.size)%h.size]
}

// PeakTotal returns the largest total count observed, floored at 10.
func (h *History) PeakTotal() int64 {
	var peak int64 = minPeakTotal
	for _, s := range h.Samples() {
		if s.Total > peak {
			peak = s.Total
		}
	}
	return peak
}

// AxisMax returns the chart's vertical ceiling: the observed peak plus 10%
// headroom, rounded up. Integer math keeps exact multiples exact; a float
// product would nudge peak 100 past 110 and ceil it to 111.
func (h *History) AxisMax() float64 {
	return float64((h.PeakTotal()*11 + 9) / 10)
}

// Point is one plotted chart coordinate.
type Point struct {
	X float64
	Y float64
}

// Resample projects the history onto targetLen evenly spaced points by
// linear interpolation, so the chart can be drawn at any width regardless
// of how many samples exist. extract selects which field of the sample to
// plot. An empty history or zero target produces no points; a single-sample
// history produces a flat line.
func Resample(samples []Sample, targetLen int, extract func(Sample) float64) []Point {
	if len(samples) == 0 || targetLen <= 0 {
		return nil
	}
	if len(samples) == 1 {
		v := extract(samples[0])
		out := make([]Point, targetLen)
		for i := range out {
			out[i] = Point{X: float64(i), Y: v}
		}
		return out
	}

	srcLen := len(samples)
	out := make([]Point, targetLen)
	for i := 0; i < targetLen; i++ {
		t := 0.0
		if targetLen > 1 {
			t = float64(i) / float64(targetLen-1)
		}
		pos := t * float64(srcLen-1)
		lo := int(pos)
		if lo > srcLen-2 {
			lo = srcLen - 2
		}
		hi := lo + 1
		frac := pos - float64(lo)
		v := extract(samples[lo])*(1-frac) + extract(samples[hi])*frac
		out[i] = Point{X: float64(i), Y: v}
	}
	return out
}

// Severity tiers for the idle-connection ratio.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
)

// IdlePct returns the idle-connection percentage of the sample, 0 when no
// connections exist. Integer division matches the displayed value.
func (s Sample) IdlePct() int64 {
	if s.Total <= 0 {
		return 0
	}
	return s.Idle * 100 / s.Total
}

// IdleSeverity classifies the idle ratio: >80% high, >50% medium, else low.
// The comparisons are strict; exactly 80% is medium.
func (s Sample) IdleSeverity() Severity {
	pct := s.IdlePct()
	switch {
	case pct > 80:
		return SeverityHigh
	case pct > 50:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// CacheHitSeverity classifies the buffer cache hit ratio: >=99% low
// (healthy), >=95% medium, else high.
func CacheHitSeverity(pct float64) Severity {
	switch {
	case pct >= 99:
		return SeverityLow
	case pct >= 95:
		return SeverityMedium
	default:
		return SeverityHigh
	}
}

// ConnUsagePct returns backends as a percentage of the max_connections
// ceiling, 0 when the ceiling is unknown.
func ConnUsagePct(backends, maxConns int64) int64 {
	if maxConns <= 0 {
		return 0
	}
	return backends * 100 / maxConns
}

// ConnUsageSeverity classifies connection-slot usage: <70% low, <90%
// medium, else high.
func ConnUsageSeverity(pct int64) Severity {
	switch {
	case pct < 70:
		return SeverityLow
	case pct < 90:
		return SeverityMedium
	default:
		return SeverityHigh
	}
}
