package score

import (
	"github.com/dnldd/timing/indicator"
)

const (
	// rsiPullbackLower is the lower bound of the RSI pullback band.
	rsiPullbackLower = 35
	// rsiPullbackUpper is the upper bound of the RSI pullback band.
	rsiPullbackUpper = 50
	// stochOversoldLimit is the %K level below which the oscillator is
	// considered oversold.
	stochOversoldLimit = 20
	// atrPercentileLower is the lower bound of the volatility percentile band.
	atrPercentileLower = 20
	// atrPercentileUpper is the upper bound of the volatility percentile band.
	atrPercentileUpper = 40
	// volumeRatioLimit is the volume ratio above which participation is
	// considered elevated.
	volumeRatioLimit = 1.2
)

// Signals represents the per-bar binary entry signals derived from the
// indicator set. An undefined indicator always yields a false signal.
type Signals struct {
	// EMA signals the fast average above the slow average above the trend
	// average.
	EMA []bool
	// RSI signals the index inside the pullback band.
	RSI []bool
	// Stoch signals %K above %D while oversold.
	Stoch []bool
	// VWAP signals the close above the volume weighted average price.
	VWAP []bool
	// IVP signals the ATR percentile inside the volatility band.
	IVP []bool
	// PC signals elevated volume participation.
	PC []bool
}

// deriveSignals derives the binary signal series from the provided
// indicator set. Comparisons against undefined values fail, so bars inside
// a warm-up window never signal.
func deriveSignals(set *indicator.Set) *Signals {
	n := len(set.Close)
	signals := &Signals{
		EMA:   make([]bool, n),
		RSI:   make([]bool, n),
		Stoch: make([]bool, n),
		VWAP:  make([]bool, n),
		IVP:   make([]bool, n),
		PC:    make([]bool, n),
	}

	for idx := 0; idx < n; idx++ {
		signals.EMA[idx] = set.FastEMA[idx] > set.SlowEMA[idx] && set.SlowEMA[idx] > set.TrendSMA[idx]
		signals.RSI[idx] = set.RSI[idx] >= rsiPullbackLower && set.RSI[idx] <= rsiPullbackUpper
		signals.Stoch[idx] = set.StochK[idx] > set.StochD[idx] && set.StochK[idx] < stochOversoldLimit
		signals.VWAP[idx] = set.Close[idx] > set.VWAP[idx]
		signals.IVP[idx] = set.ATRPercentile[idx] >= atrPercentileLower && set.ATRPercentile[idx] <= atrPercentileUpper
		signals.PC[idx] = set.VolumeRatio[idx] > volumeRatioLimit
	}

	return signals
}
