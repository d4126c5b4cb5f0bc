package indicator

import "math"

// Series is an ordered numeric series aligned one value per daily bar.
// Bars without sufficient history carry an undefined (NaN) value. Undefined
// values propagate through dependent transforms and fail every threshold
// comparison downstream, so an undefined indicator can never raise a signal.
type Series []float64

// NewSeries initializes a series of the provided length with every value
// undefined.
func NewSeries(n int) Series {
	s := make(Series, n)
	for idx := range s {
		s[idx] = math.NaN()
	}

	return s
}

// Defined reports whether the value at the provided index is defined.
func (s Series) Defined(idx int) bool {
	return !math.IsNaN(s[idx])
}

// Last returns the final value of the series.
func (s Series) Last() float64 {
	if len(s) == 0 {
		return math.NaN()
	}

	return s[len(s)-1]
}

// div divides the provided numerator by the provided denominator, yielding
// an undefined value on a zero denominator instead of an infinity.
func div(num float64, denom float64) float64 {
	if denom == 0 {
		return math.NaN()
	}

	return num / denom
}

// RollingMean returns the trailing mean of the series over the provided
// window. A bar with fewer than window preceding values, or with an
// undefined value in its window, is undefined.
func RollingMean(s Series, window int) Series {
	out := NewSeries(len(s))

	for idx := window - 1; idx < len(s); idx++ {
		sum := float64(0)
		defined := true
		for k := idx - window + 1; k <= idx; k++ {
			if !s.Defined(k) {
				defined = false
				break
			}
			sum += s[k]
		}

		if defined {
			out[idx] = sum / float64(window)
		}
	}

	return out
}

// RollingMin returns the trailing minimum of the series over the provided
// window, undefined under the same conditions as RollingMean.
func RollingMin(s Series, window int) Series {
	out := NewSeries(len(s))

	for idx := window - 1; idx < len(s); idx++ {
		min := math.Inf(1)
		defined := true
		for k := idx - window + 1; k <= idx; k++ {
			if !s.Defined(k) {
				defined = false
				break
			}
			min = math.Min(min, s[k])
		}

		if defined {
			out[idx] = min
		}
	}

	return out
}

// RollingMax returns the trailing maximum of the series over the provided
// window, undefined under the same conditions as RollingMean.
func RollingMax(s Series, window int) Series {
	out := NewSeries(len(s))

	for idx := window - 1; idx < len(s); idx++ {
		max := math.Inf(-1)
		defined := true
		for k := idx - window + 1; k <= idx; k++ {
			if !s.Defined(k) {
				defined = false
				break
			}
			max = math.Max(max, s[k])
		}

		if defined {
			out[idx] = max
		}
	}

	return out
}
