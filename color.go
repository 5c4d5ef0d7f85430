package rgba

// Color represents an 8-bit per channel RGBA color.
//
// JSON and YAML encode it as the sequence [r, g, b, a]; BSON as a
// document with keys r, g, b, a.
type Color struct {
	R uint8 // Red channel component
	G uint8 // Green channel component
	B uint8 // Blue channel component
	A uint8 // Alpha channel component, 255 is opaque
}

// Clamp01 clamps v to [0,1]. NaN clamps to 0.
func Clamp01(v float64) float64 {
	if !(v >= 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// channel64 clamps v, scales it by 255 and truncates toward zero.
func channel64(v float64) uint8 {
	return uint8(Clamp01(v) * 255)
}

// channel32 is channel64 for float32 input, scaled in float32.
func channel32(v float32) uint8 {
	v *= 255
	if !(v >= 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// RGB24 creates an opaque Color from a packed 0xRRGGBB value.
// The upper byte is ignored.
func RGB24(packed uint32) Color {
	return RGB(uint8(packed>>16), uint8(packed>>8), uint8(packed))
}

// RGB creates a Color with alpha=255.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// RGBA creates a Color from RGBA bytes.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGBFloat32 creates an opaque Color from channels in [0,1].
// Values out of range are clamped, fractions are truncated.
func RGBFloat32(r, g, b float32) Color {
	return RGB(channel32(r), channel32(g), channel32(b))
}

// RGBFloat64 creates an opaque Color from channels in [0,1].
// Values out of range are clamped, fractions are truncated.
func RGBFloat64(r, g, b float64) Color {
	return RGB(channel64(r), channel64(g), channel64(b))
}

// RGBAFloat64 creates a Color from RGBA channels in [0,1].
func RGBAFloat64(r, g, b, a float64) Color {
	return RGBA(channel64(r), channel64(g), channel64(b), channel64(a))
}

// Float32Array converts color to normalized float32 channels in R, G, B, A order.
func (c Color) Float32Array() [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}

// ToArray converts color to a normalized float64 slice.
func (c Color) ToArray() []float64 {
	return []float64{
		float64(c.R) / 255,
		float64(c.G) / 255,
		float64(c.B) / 255,
		float64(c.A) / 255,
	}
}

// Uint32 packs the color as 0xRRGGBBAA.
func (c Color) Uint32() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// Opaque reports whether alpha is 255.
func (c Color) Opaque() bool { return c.A == 0xff }
