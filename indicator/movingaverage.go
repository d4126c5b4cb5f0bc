package indicator

// EMA returns the exponential moving average of the series for the provided
// span. The average is seeded with the first value and uses the smoothing
// factor 2/(span+1) without bias adjustment, so every bar is defined.
func EMA(s Series, span int) Series {
	out := NewSeries(len(s))
	if len(s) == 0 {
		return out
	}

	alpha := 2 / (float64(span) + 1)
	out[0] = s[0]
	for idx := 1; idx < len(s); idx++ {
		out[idx] = alpha*s[idx] + (1-alpha)*out[idx-1]
	}

	return out
}

// SMA returns the trailing simple moving average of the series over the
// provided window, with leading bars undefined until the window fills.
func SMA(s Series, window int) Series {
	return RollingMean(s, window)
}
