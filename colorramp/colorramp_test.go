package colorramp

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gammactl/gammactl"
)

func setting(temp int) gammactl.ColorSetting {
	s := gammactl.Neutral()
	s.Temperature = temp
	return s
}

func fill(t *testing.T, s gammactl.ColorSetting, size int) (r, g, b []uint16) {
	t.Helper()
	r = make([]uint16, size)
	g = make([]uint16, size)
	b = make([]uint16, size)
	Fill(r, g, b, s, size)
	return r, g, b
}

func TestWhitePoint(t *testing.T) {
	for _, tc := range []struct {
		name string
		temp int
		want [3]float64
	}{
		{"neutral", 6500, [3]float64{1, 1, 1}},
		{"minimum", 1000, blackbody[0]},
		{"below minimum clamps", 500, blackbody[0]},
		{"maximum", 25000, blackbody[len(blackbody)-1]},
		{"above maximum clamps", 30000, blackbody[len(blackbody)-1]},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := WhitePoint(tc.temp); got != tc.want {
				t.Errorf("WhitePoint(%d) = %v, want %v", tc.temp, got, tc.want)
			}
		})
	}

	t.Run("interpolates between rows", func(t *testing.T) {
		lo, hi := WhitePoint(3000), WhitePoint(3100)
		got := WhitePoint(3050)
		for c := range got {
			want := (lo[c] + hi[c]) / 2
			if math.Abs(got[c]-want) > 1e-12 {
				t.Errorf("channel %d = %v, want midpoint %v", c, got[c], want)
			}
		}
	})

	t.Run("warm temperatures are red dominant", func(t *testing.T) {
		w := WhitePoint(1000)
		if w[0] != 1 {
			t.Errorf("red = %v, want 1", w[0])
		}
		if w[2] != 0 {
			t.Errorf("blue = %v, want 0", w[2])
		}
		if w[1] <= w[2] || w[1] >= w[0] {
			t.Errorf("green = %v, want between blue and red", w[1])
		}
	})

	t.Run("cold temperatures are blue dominant", func(t *testing.T) {
		w := WhitePoint(25000)
		if w[2] != 1 {
			t.Errorf("blue = %v, want 1", w[2])
		}
		if w[0] >= w[1] || w[1] >= w[2] {
			t.Errorf("white point %v, want red < green < blue", w)
		}
	})
}

func TestFillNeutralIsIdentity(t *testing.T) {
	for _, size := range []int{2, 256, 1024} {
		r, g, b := fill(t, gammactl.Neutral(), size)
		want := make([]uint16, size)
		for i := range want {
			want[i] = uint16(math.Round(float64(i) / float64(size) * 65536))
		}
		for name, got := range map[string][]uint16{"red": r, "green": g, "blue": b} {
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("size %d: %s channel mismatch (-want +got):\n%s", size, name, diff)
			}
		}
	}
}

func TestFillEndpoints(t *testing.T) {
	const size = 256
	for _, temp := range []int{1000, 2500, 4500, 6500, 10000, 25000} {
		r, g, b := fill(t, setting(temp), size)
		white := WhitePoint(temp)
		for c, ramp := range [3][]uint16{r, g, b} {
			if ramp[0] != 0 {
				t.Errorf("temp %d channel %d: ramp[0] = %d, want 0", temp, c, ramp[0])
			}
			want := math.Round(float64(size-1) / size * 65536 * white[c])
			if got := float64(ramp[size-1]); math.Abs(got-want) > 1 {
				t.Errorf("temp %d channel %d: ramp[last] = %v, want %v", temp, c, got, want)
			}
		}
	}
}

func TestFillDeterministic(t *testing.T) {
	s := setting(3400)
	s.Gamma = [3]float64{0.9, 1.0, 1.1}
	s.Brightness = 0.8
	r1, g1, b1 := fill(t, s, 512)
	r2, g2, b2 := fill(t, s, 512)
	if diff := cmp.Diff(r1, r2); diff != "" {
		t.Errorf("red differs between identical calls:\n%s", diff)
	}
	if diff := cmp.Diff(g1, g2); diff != "" {
		t.Errorf("green differs between identical calls:\n%s", diff)
	}
	if diff := cmp.Diff(b1, b2); diff != "" {
		t.Errorf("blue differs between identical calls:\n%s", diff)
	}
}

func TestFillBrightnessMonotonic(t *testing.T) {
	const size = 256
	prev := [3][]uint16{}
	for i, brightness := range []float64{0.25, 0.5, 0.75, 1.0} {
		s := setting(4500)
		s.Brightness = brightness
		r, g, b := fill(t, s, size)
		cur := [3][]uint16{r, g, b}
		if i > 0 {
			for c := range cur {
				for j := range cur[c] {
					if cur[c][j] < prev[c][j] {
						t.Fatalf("brightness %v channel %d index %d: %d < %d at lower brightness",
							brightness, c, j, cur[c][j], prev[c][j])
					}
				}
			}
		}
		prev = cur
	}
}

func TestFillTemperatureExtremes(t *testing.T) {
	const size = 256
	last := size - 1

	r, g, b := fill(t, setting(gammactl.MinTemperature), size)
	if r[last] <= g[last] || g[last] <= b[last] {
		t.Errorf("1000K: want red > green > blue at top, got (%d, %d, %d)",
			r[last], g[last], b[last])
	}
	for i, v := range b {
		if v != 0 {
			t.Errorf("1000K: blue[%d] = %d, want 0", i, v)
		}
	}

	r, g, b = fill(t, setting(gammactl.MaxTemperature), size)
	if b[last] <= g[last] || g[last] <= r[last] {
		t.Errorf("25000K: want blue > green > red at top, got (%d, %d, %d)",
			r[last], g[last], b[last])
	}
}

func TestFillGamma(t *testing.T) {
	const size = 256
	s := setting(6500)
	s.Gamma = [3]float64{2, 1, 0.5}
	r, g, b := fill(t, s, size)
	// x^(1/2) > x > x^2 for x in (0, 1).
	mid := size / 2
	if !(r[mid] > g[mid] && g[mid] > b[mid]) {
		t.Errorf("mid-ramp (%d, %d, %d), want red > green > blue", r[mid], g[mid], b[mid])
	}
	// Endpoints are unaffected by gamma.
	if r[0] != 0 || b[0] != 0 {
		t.Errorf("ramp[0] = (%d, _, %d), want 0", r[0], b[0])
	}
}

func TestFillZeroSize(t *testing.T) {
	Fill(nil, nil, nil, gammactl.Neutral(), 0) // must not panic
}

func TestFillSizeMismatchPanics(t *testing.T) {
	defer func() {
		v := recover()
		if v == nil {
			t.Fatal("expected panic on mismatched ramp lengths")
		}
		if s, ok := v.(string); !ok || !strings.Contains(s, "colorramp") {
			t.Fatalf("unexpected panic value %v", v)
		}
	}()
	Fill(make([]uint16, 256), make([]uint16, 256), make([]uint16, 128), gammactl.Neutral(), 256)
}
