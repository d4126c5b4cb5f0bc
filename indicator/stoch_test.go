package indicator

import (
	"testing"

	"github.com/peterldowns/testy/assert"
)

func TestStochK(t *testing.T) {
	highs := Series{10, 12, 14, 13}
	lows := Series{8, 9, 10, 11}
	closes := Series{9, 11, 13, 12}

	stochK := StochK(highs, lows, closes, 3)

	// Ensure the oscillator is undefined until the window fills.
	assert.Equal(t, stochK.Defined(0), false)
	assert.Equal(t, stochK.Defined(1), false)

	// close 12 sits three fifths up the trailing 9-14 range.
	assert.Equal(t, stochK[3], float64(60))

	// Ensure a zero trailing range yields an undefined oscillator for
	// every bar past the warm-up window.
	flat := Series{5, 5, 5, 5, 5}
	stochK = StochK(flat, flat, flat, 3)
	for idx := range stochK {
		assert.Equal(t, stochK.Defined(idx), false)
	}
}

func TestStochD(t *testing.T) {
	stochK := NewSeries(6)
	stochK[2] = 30
	stochK[3] = 60
	stochK[4] = 90
	stochK[5] = 30

	stochD := StochD(stochK, 3)

	// Ensure the smoothing stays undefined while its window overlaps the
	// oscillator warm-up.
	assert.Equal(t, stochD.Defined(2), false)
	assert.Equal(t, stochD.Defined(3), false)
	assert.Equal(t, stochD[4], float64(60))
	assert.Equal(t, stochD[5], float64(60))
}
