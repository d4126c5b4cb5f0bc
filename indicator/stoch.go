package indicator

// StochK returns the stochastic oscillator %K over the provided window: the
// position of the close within the trailing high-low range, scaled to
// [0,100]. A bar whose trailing range is zero is undefined.
func StochK(highs Series, lows Series, closes Series, window int) Series {
	lowest := RollingMin(lows, window)
	highest := RollingMax(highs, window)

	out := NewSeries(len(closes))
	for idx := range out {
		if !lowest.Defined(idx) || !highest.Defined(idx) {
			continue
		}

		out[idx] = div(100*(closes[idx]-lowest[idx]), highest[idx]-lowest[idx])
	}

	return out
}

// StochD returns the stochastic oscillator %D, the trailing mean of %K over
// the provided window.
func StochD(stochK Series, window int) Series {
	return RollingMean(stochK, window)
}
