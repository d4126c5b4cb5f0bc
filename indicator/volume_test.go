package indicator

import (
	"testing"

	"github.com/peterldowns/testy/assert"
)

func TestVolumeRatio(t *testing.T) {
	volumes := Series{10, 20, 30}

	ratio := VolumeRatio(volumes, 2)

	// Ensure the ratio is undefined until the window fills.
	assert.Equal(t, ratio.Defined(0), false)
	assert.Equal(t, ratio[2], 1.2)

	// Ensure a zero trailing mean volume yields an undefined ratio.
	ratio = VolumeRatio(Series{0, 0, 5}, 2)
	assert.Equal(t, ratio.Defined(1), false)
}
