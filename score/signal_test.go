package score

import (
	"testing"

	"github.com/dnldd/timing/indicator"
	"github.com/peterldowns/testy/assert"
)

// signalSet builds a two-bar indicator set where the first bar raises every
// signal and the second bar is entirely undefined.
func signalSet() *indicator.Set {
	defined := func(value float64) indicator.Series {
		s := indicator.NewSeries(2)
		s[0] = value
		return s
	}

	return &indicator.Set{
		Close:         indicator.Series{110, 100},
		FastEMA:       defined(109),
		SlowEMA:       defined(108),
		TrendSMA:      defined(107),
		RSI:           defined(40),
		StochK:        defined(15),
		StochD:        defined(10),
		VWAP:          defined(105),
		ATR:           defined(2),
		ATRPercentile: defined(30),
		VolumeRatio:   defined(1.5),
	}
}

func TestDeriveSignals(t *testing.T) {
	signals := deriveSignals(signalSet())

	// Ensure each condition raises on the first bar.
	assert.Equal(t, signals.EMA[0], true)
	assert.Equal(t, signals.RSI[0], true)
	assert.Equal(t, signals.Stoch[0], true)
	assert.Equal(t, signals.VWAP[0], true)
	assert.Equal(t, signals.IVP[0], true)
	assert.Equal(t, signals.PC[0], true)

	// Ensure undefined indicators never raise a signal, even with a
	// defined close.
	assert.Equal(t, signals.EMA[1], false)
	assert.Equal(t, signals.RSI[1], false)
	assert.Equal(t, signals.Stoch[1], false)
	assert.Equal(t, signals.VWAP[1], false)
	assert.Equal(t, signals.IVP[1], false)
	assert.Equal(t, signals.PC[1], false)
}

func TestSignalBoundaries(t *testing.T) {
	set := signalSet()

	// The RSI band is inclusive at both ends.
	set.RSI[0] = 35
	assert.Equal(t, deriveSignals(set).RSI[0], true)
	set.RSI[0] = 50
	assert.Equal(t, deriveSignals(set).RSI[0], true)
	set.RSI[0] = 50.1
	assert.Equal(t, deriveSignals(set).RSI[0], false)

	// The oversold limit is exclusive.
	set.StochK[0] = 20
	assert.Equal(t, deriveSignals(set).Stoch[0], false)

	// The volatility band is inclusive at both ends.
	set.ATRPercentile[0] = 20
	assert.Equal(t, deriveSignals(set).IVP[0], true)
	set.ATRPercentile[0] = 40
	assert.Equal(t, deriveSignals(set).IVP[0], true)
	set.ATRPercentile[0] = 40.5
	assert.Equal(t, deriveSignals(set).IVP[0], false)

	// The participation limit is exclusive.
	set.VolumeRatio[0] = 1.2
	assert.Equal(t, deriveSignals(set).PC[0], false)
}
