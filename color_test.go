package rgba

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGBIsOpaque(t *testing.T) {
	for v := 0; v <= 255; v++ {
		b := uint8(v)
		c := RGB(b, 255-b, b/2)
		require.Equal(t, uint8(255), c.A, "rgb(%d)", v)
		require.Equal(t, b, c.R)
		require.Equal(t, 255-b, c.G)
		require.Equal(t, b/2, c.B)
	}
}

func TestRGB24(t *testing.T) {
	cases := []uint32{0, 0xffffff, 0x123456, 0xff8000, 0xab000000, 0xdeadbeef, math.MaxUint32}
	for _, p := range cases {
		c := RGB24(p)
		assert.Equal(t, uint8((p>>16)&0xff), c.R, "%#x red", p)
		assert.Equal(t, uint8((p>>8)&0xff), c.G, "%#x green", p)
		assert.Equal(t, uint8(p&0xff), c.B, "%#x blue", p)
		assert.Equal(t, uint8(255), c.A, "%#x alpha", p)
	}

	assert.Equal(t, RGB24(0x123456), RGB24(0xff123456), "upper byte ignored")
}

func TestRGBA(t *testing.T) {
	c := RGBA(1, 2, 3, 4)
	assert.Equal(t, Color{R: 1, G: 2, B: 3, A: 4}, c)
	assert.False(t, c.Opaque())
	assert.True(t, RGB(1, 2, 3).Opaque())
}

func TestFloatChannelTruncates(t *testing.T) {
	cases := []struct {
		in   float64
		want uint8
	}{
		{0.0, 0},
		{0.5, 127},
		{0.999999, 254},
		{1.0, 255},
		{-1.0, 0},
		{2.0, 255},
		{math.Inf(1), 255},
		{math.Inf(-1), 0},
		{math.NaN(), 0},
	}
	for _, tc := range cases {
		c := RGBFloat64(tc.in, tc.in, tc.in)
		assert.Equal(t, RGB(tc.want, tc.want, tc.want), c, "rgb_f64(%v)", tc.in)

		c = RGBAFloat64(tc.in, tc.in, tc.in, tc.in)
		assert.Equal(t, RGBA(tc.want, tc.want, tc.want, tc.want), c, "rgba_f64(%v)", tc.in)

		c32 := RGBFloat32(float32(tc.in), float32(tc.in), float32(tc.in))
		assert.Equal(t, RGB(tc.want, tc.want, tc.want), c32, "rgb_f32(%v)", tc.in)
	}
}

func TestFloatChannelMatchesTruncation(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		f := float64(i) / 1000
		want := uint8(math.Trunc(f * 255))
		assert.Equal(t, want, RGBFloat64(f, f, f).R, "f=%v", f)
	}
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-0.5))
	assert.Equal(t, 0.25, Clamp01(0.25))
	assert.Equal(t, 1.0, Clamp01(3))
	assert.Equal(t, 0.0, Clamp01(math.NaN()))
}

func TestFloatChannelFollowsClamp01(t *testing.T) {
	inputs := []float64{
		math.Inf(-1), -1e300, -1, -0.0, 0, 1e-300, 0.5, 0.999999,
		math.Nextafter(1, 0), 1, math.Nextafter(1, 2), 2, 1e300, math.Inf(1), math.NaN(),
	}
	for _, v := range inputs {
		want := uint8(Clamp01(v) * 255)
		assert.Equal(t, want, RGBFloat64(v, 0, 0).R, "v=%v", v)
		assert.Equal(t, want, RGBAFloat64(0, 0, 0, v).A, "v=%v", v)
	}
}

func TestFloat32Array(t *testing.T) {
	samples := []uint8{0, 1, 64, 127, 128, 200, 254, 255}
	for _, r := range samples {
		for _, a := range samples {
			c := RGBA(r, 255-r, r/3, a)
			want := [4]float32{
				float32(r) / 255,
				float32(255-r) / 255,
				float32(r/3) / 255,
				float32(a) / 255,
			}
			assert.Equal(t, want, c.Float32Array())
		}
	}

	assert.Equal(t, [4]float32{1, 0, 0, 1}, Red.Float32Array())
	assert.Equal(t, [4]float32{0, 0, 0, 0}, Transparent.Float32Array())
}

func TestToArrayAndUint32(t *testing.T) {
	c := RGBA(0x12, 0x34, 0x56, 0x78)
	assert.Equal(t, uint32(0x12345678), c.Uint32())
	assert.Equal(t, []float64{1, 0, 0, 1}, Red.ToArray())
}

func TestFloatRoundTripBounded(t *testing.T) {
	for v := 0; v <= 255; v++ {
		b := uint8(v)
		c := RGBA(b, 255-b, b, 255-b)
		f := c.ToArray()
		got := RGBAFloat64(f[0], f[1], f[2], f[3])

		assert.LessOrEqual(t, absDiff(c.R, got.R), 1, "red %d", v)
		assert.LessOrEqual(t, absDiff(c.G, got.G), 1, "green %d", v)
		assert.LessOrEqual(t, absDiff(c.B, got.B), 1, "blue %d", v)
		assert.LessOrEqual(t, absDiff(c.A, got.A), 1, "alpha %d", v)
	}
}

func TestPalette(t *testing.T) {
	cases := map[string]struct {
		got  Color
		want [4]uint8
	}{
		"transparent": {Transparent, [4]uint8{0, 0, 0, 0}},
		"red":         {Red, [4]uint8{255, 0, 0, 255}},
		"green":       {Green, [4]uint8{0, 255, 0, 255}},
		"blue":        {Blue, [4]uint8{0, 0, 255, 255}},
		"cyan":        {Cyan, [4]uint8{0, 255, 255, 255}},
		"magenta":     {Magenta, [4]uint8{255, 0, 255, 255}},
		"yellow":      {Yellow, [4]uint8{255, 255, 0, 255}},
		"white":       {White, [4]uint8{255, 255, 255, 255}},
		"black":       {Black, [4]uint8{0, 0, 0, 255}},
		"grey":        {Grey, [4]uint8{127, 127, 127, 255}},
	}
	for name, tc := range cases {
		assert.Equal(t, tc.want, [4]uint8{tc.got.R, tc.got.G, tc.got.B, tc.got.A}, name)
	}
}

func TestNamed(t *testing.T) {
	cases := map[string]Color{
		"transparent": RGBA(0, 0, 0, 0),
		"Red":         RGB(255, 0, 0),
		" GREY ":      RGB(127, 127, 127),
		"white":       RGB(255, 255, 255),
	}
	for name, want := range cases {
		got, ok := Named(name)
		require.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	_, ok := Named("purple")
	assert.False(t, ok)

	for name, c := range palette {
		v, _ := Named(name)
		assert.Equal(t, c, v, name)
	}
}

func TestNamedUnaffectedByReassignment(t *testing.T) {
	saved := Red
	t.Cleanup(func() { Red = saved })

	Red = Black
	got, ok := Named("red")
	require.True(t, ok)
	assert.Equal(t, RGB(255, 0, 0), got)
}

func TestPaletteVarsMatchNamed(t *testing.T) {
	vars := map[string]Color{
		"transparent": Transparent, "red": Red, "green": Green, "blue": Blue,
		"cyan": Cyan, "magenta": Magenta, "yellow": Yellow, "white": White,
		"black": Black, "grey": Grey,
	}
	require.Len(t, palette, len(vars))
	for name, c := range vars {
		got, ok := Named(name)
		require.True(t, ok, name)
		assert.Equal(t, c, got, name)
	}
}

func TestColorIsMapKey(t *testing.T) {
	seen := map[Color]string{Red: "red", Grey: "grey"}
	assert.Equal(t, "red", seen[RGB(255, 0, 0)])
	assert.Equal(t, "grey", seen[RGB24(0x7f7f7f)])
	_, ok := seen[RGBA(255, 0, 0, 0)]
	assert.False(t, ok)
}

// absDiff returns |a-b|.
func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
