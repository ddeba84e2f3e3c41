// Package colorramp computes per-channel gamma ramps for a color
// temperature, approximating the color of an ideal blackbody radiator.
package colorramp

import (
	"fmt"
	"math"

	"github.com/gammactl/gammactl"
)

// WhitePoint returns the relative red, green, and blue intensity of a
// blackbody at temp Kelvin, each in [0, 1]. 6500K is exactly neutral.
// Between table rows each channel is interpolated linearly and
// independently; temperatures at or beyond the table bounds use the
// boundary rows unchanged.
func WhitePoint(temp int) [3]float64 {
	switch {
	case temp <= tableMinTemp:
		return blackbody[0]
	case temp >= tableMaxTemp:
		return blackbody[len(blackbody)-1]
	}
	lo := (temp - tableMinTemp) / tableStep
	frac := float64(temp-tableMinTemp-lo*tableStep) / tableStep
	var white [3]float64
	for c := range white {
		white[c] = blackbody[lo][c] + (blackbody[lo+1][c]-blackbody[lo][c])*frac
	}
	return white
}

// Fill computes the ramp for setting into r, g, and b, which must all have
// length size (a mismatch is a programmer error and panics). Each index i
// maps the normalized input i/size through the temperature's white point,
// the per-channel gamma exponent, and the brightness multiplier onto
// [0, 65535]. A neutral setting yields the identity ramp
// round(i/size*65536). Fill is deterministic and does not allocate; a zero
// size is a no-op.
func Fill(r, g, b []uint16, setting gammactl.ColorSetting, size int) {
	if len(r) != size || len(g) != size || len(b) != size {
		panic(fmt.Sprintf("colorramp: ramp lengths (%d, %d, %d) do not match size %d",
			len(r), len(g), len(b), size))
	}
	white := WhitePoint(setting.Temperature)
	for c, ramp := range [3][]uint16{r, g, b} {
		exp := 1 / setting.Gamma[c]
		for i := range ramp {
			v := math.Pow(float64(i)/float64(size)*white[c], exp)
			ramp[i] = clamp16(math.Round(v * 65536 * setting.Brightness))
		}
	}
}

func clamp16(v float64) uint16 {
	switch {
	case v < 0:
		return 0
	case v > math.MaxUint16:
		return math.MaxUint16
	}
	return uint16(v)
}
