package indicator

import (
	"fmt"
	"time"

	"github.com/dnldd/timing/shared"
)

const (
	// FastEMASpan is the span of the fast exponential moving average.
	FastEMASpan = 9
	// SlowEMASpan is the span of the slow exponential moving average.
	SlowEMASpan = 21
	// TrendSMAWindow is the window of the trend simple moving average and
	// the longest lookback of the set.
	TrendSMAWindow = 50
	// RSIPeriod is the relative strength index lookback period.
	RSIPeriod = 7
	// StochWindow is the stochastic oscillator range window.
	StochWindow = 14
	// StochSmoothing is the stochastic oscillator %D smoothing window.
	StochSmoothing = 3
	// ATRPeriod is the average true range lookback period.
	ATRPeriod = 14
	// VolumeWindow is the trailing mean volume window for the volume ratio.
	VolumeWindow = 20
)

// Set represents the full collection of derived series for a symbol,
// aligned one value per daily bar.
type Set struct {
	Symbol        string
	Dates         []time.Time
	Close         Series
	FastEMA       Series
	SlowEMA       Series
	TrendSMA      Series
	RSI           Series
	StochK        Series
	StochD        Series
	VWAP          Series
	ATR           Series
	ATRPercentile Series
	VolumeRatio   Series
}

// Derive derives the full indicator set from the provided daily history,
// ranking the average true range with the provided mode. A series shorter
// than the longest lookback yields leading undefined values, not an error.
func Derive(candles []shared.Candlestick, mode RankMode) (*Set, error) {
	if len(candles) == 0 {
		return nil, shared.ErrNoData
	}

	err := shared.ValidateSeries(candles)
	if err != nil {
		return nil, fmt.Errorf("validating series: %w", err)
	}

	n := len(candles)
	set := &Set{
		Symbol: candles[0].Symbol,
		Dates:  make([]time.Time, n),
		Close:  make(Series, n),
	}

	highs := make(Series, n)
	lows := make(Series, n)
	volumes := make(Series, n)
	for idx := range candles {
		set.Dates[idx] = candles[idx].Date
		set.Close[idx] = candles[idx].Close
		highs[idx] = candles[idx].High
		lows[idx] = candles[idx].Low
		volumes[idx] = candles[idx].Volume
	}

	set.FastEMA = EMA(set.Close, FastEMASpan)
	set.SlowEMA = EMA(set.Close, SlowEMASpan)
	set.TrendSMA = SMA(set.Close, TrendSMAWindow)
	set.RSI = RSI(set.Close, RSIPeriod)
	set.StochK = StochK(highs, lows, set.Close, StochWindow)
	set.StochD = StochD(set.StochK, StochSmoothing)
	set.VWAP = VWAP(set.Close, volumes)
	set.ATR = ATR(highs, lows, set.Close, ATRPeriod)
	set.ATRPercentile = PercentileRank(set.ATR, mode)
	set.VolumeRatio = VolumeRatio(volumes, VolumeWindow)

	return set, nil
}
