package indicator

import "math"

// TrueRange returns the per-bar true range: the greatest of the bar's
// high-low range and the gaps between the bar's extremes and the previous
// close. The first bar has no previous close and contributes only its
// high-low range.
func TrueRange(highs Series, lows Series, closes Series) Series {
	out := NewSeries(len(highs))

	for idx := range out {
		highLow := highs[idx] - lows[idx]
		if idx == 0 {
			out[idx] = highLow
			continue
		}

		highClose := math.Abs(highs[idx] - closes[idx-1])
		lowClose := math.Abs(lows[idx] - closes[idx-1])
		out[idx] = math.Max(highLow, math.Max(highClose, lowClose))
	}

	return out
}

// ATR returns the average true range, the trailing mean of the true range
// over the provided period.
func ATR(highs Series, lows Series, closes Series, period int) Series {
	return RollingMean(TrueRange(highs, lows, closes), period)
}
