package indicator

// RSI returns the relative strength index of the provided close series over
// the provided period: the trailing mean of upward close-to-close deltas
// against the trailing mean of downward delta magnitudes, mapped through
// 100 - 100/(1+RS). The first bar has no preceding close and counts as zero
// gain and zero loss.
//
// When the trailing loss mean is zero the ratio is undefined; the index
// saturates to 100 if any gains were observed in the window and is
// undefined when the window saw no movement at all.
func RSI(closes Series, period int) Series {
	gains := make(Series, len(closes))
	losses := make(Series, len(closes))
	for idx := 1; idx < len(closes); idx++ {
		delta := closes[idx] - closes[idx-1]
		switch {
		case delta > 0:
			gains[idx] = delta
		case delta < 0:
			losses[idx] = -delta
		}
	}

	gainMean := RollingMean(gains, period)
	lossMean := RollingMean(losses, period)

	out := NewSeries(len(closes))
	for idx := range out {
		if !gainMean.Defined(idx) || !lossMean.Defined(idx) {
			continue
		}

		switch {
		case lossMean[idx] == 0 && gainMean[idx] == 0:
			// No movement in the window, the index stays undefined.
		case lossMean[idx] == 0:
			out[idx] = 100
		default:
			rs := gainMean[idx] / lossMean[idx]
			out[idx] = 100 - 100/(1+rs)
		}
	}

	return out
}
