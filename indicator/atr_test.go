package indicator

import (
	"testing"

	"github.com/peterldowns/testy/assert"
)

func TestTrueRange(t *testing.T) {
	highs := Series{10, 12, 11}
	lows := Series{8, 9, 10}
	closes := Series{9, 11, 10}

	tr := TrueRange(highs, lows, closes)

	// The first bar has no previous close and contributes only its
	// high-low range.
	assert.Equal(t, tr[0], float64(2))

	// The second bar's high-low range and high-previous-close gap tie.
	assert.Equal(t, tr[1], float64(3))

	// The third bar gaps below the previous close.
	assert.Equal(t, tr[2], float64(1))
}

func TestATR(t *testing.T) {
	highs := Series{10, 12}
	lows := Series{8, 9}
	closes := Series{9, 11}

	atr := ATR(highs, lows, closes, 2)

	// Ensure the range is undefined until the window fills.
	assert.Equal(t, atr.Defined(0), false)
	assert.Equal(t, atr[1], 2.5)
}
