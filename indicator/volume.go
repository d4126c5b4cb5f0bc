package indicator

// VolumeRatio returns each bar's volume relative to its trailing mean
// volume over the provided window. Bars with a zero trailing mean are
// undefined.
func VolumeRatio(volumes Series, window int) Series {
	mean := RollingMean(volumes, window)

	out := NewSeries(len(volumes))
	for idx := range out {
		if !mean.Defined(idx) {
			continue
		}

		out[idx] = div(volumes[idx], mean[idx])
	}

	return out
}
