package indicator

// VWAP returns the volume weighted average price of the series, accumulated
// from the first bar through each bar. The accumulation spans the whole
// series rather than a rolling window, so it grows monotonically in scope.
// Bars are undefined until volume has been observed.
func VWAP(closes Series, volumes Series) Series {
	out := NewSeries(len(closes))

	var priceVolume, volume float64
	for idx := range closes {
		priceVolume += closes[idx] * volumes[idx]
		volume += volumes[idx]
		out[idx] = div(priceVolume, volume)
	}

	return out
}
