package indicator

import (
	"math"
	"testing"

	"github.com/peterldowns/testy/assert"
)

func TestNewSeries(t *testing.T) {
	// Ensure every value of a new series is undefined.
	s := NewSeries(3)
	assert.Equal(t, len(s), 3)
	for idx := range s {
		assert.Equal(t, s.Defined(idx), false)
	}

	// Ensure the last value of an empty series is undefined.
	assert.Equal(t, math.IsNaN(Series{}.Last()), true)
	assert.Equal(t, Series{1, 2, 5}.Last(), float64(5))
}

func TestDiv(t *testing.T) {
	// Ensure a zero denominator yields an undefined value, not an infinity.
	assert.Equal(t, math.IsNaN(div(1, 0)), true)
	assert.Equal(t, math.IsNaN(div(0, 0)), true)
	assert.Equal(t, div(6, 3), float64(2))
}

func TestRollingMean(t *testing.T) {
	s := Series{1, 2, 3, 4}

	// Ensure the mean is undefined until the window fills.
	mean := RollingMean(s, 2)
	assert.Equal(t, mean.Defined(0), false)
	assert.Equal(t, mean[1], 1.5)
	assert.Equal(t, mean[2], 2.5)
	assert.Equal(t, mean[3], 3.5)

	// Ensure an undefined value in the window leaves the mean undefined.
	s[2] = math.NaN()
	mean = RollingMean(s, 2)
	assert.Equal(t, mean[1], 1.5)
	assert.Equal(t, mean.Defined(2), false)
	assert.Equal(t, mean.Defined(3), false)
}

func TestRollingMinMax(t *testing.T) {
	s := Series{4, 1, 3, 2}

	min := RollingMin(s, 3)
	max := RollingMax(s, 3)

	// Ensure the extremes are undefined until the window fills.
	assert.Equal(t, min.Defined(1), false)
	assert.Equal(t, max.Defined(1), false)

	assert.Equal(t, min[2], float64(1))
	assert.Equal(t, max[2], float64(4))
	assert.Equal(t, min[3], float64(1))
	assert.Equal(t, max[3], float64(3))

	// Ensure an undefined value in the window leaves the extremes undefined.
	s[1] = math.NaN()
	min = RollingMin(s, 3)
	assert.Equal(t, min.Defined(2), false)
	assert.Equal(t, min.Defined(3), false)
}
