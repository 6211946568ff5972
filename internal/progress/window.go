package progress

import (
	"math"
	"slices"
)

// window keeps the last size samples.
type window struct {
	size   int
	values []float64
}

func newWindow(size int) *window {
	return &window{size: max(size, 1)}
}

func (w *window) Add(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	if len(w.values) == w.size {
		w.values = append(w.values[:0], w.values[1:]...)
	}
	w.values = append(w.values, v)
}

// Quantile interpolates linearly between the closest ranks.
func (w *window) Quantile(q float64) float64 {
	n := len(w.values)
	if n == 0 {
		return 0
	}
	sorted := slices.Clone(w.values)
	slices.Sort(sorted)
	switch {
	case q <= 0:
		return sorted[0]
	case q >= 1:
		return sorted[n-1]
	}
	pos := q * float64(n-1)
	lower := int(math.Floor(pos))
	upper := min(int(math.Ceil(pos)), n-1)
	if lower == upper {
		return sorted[lower]
	}
	weight := pos - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}
