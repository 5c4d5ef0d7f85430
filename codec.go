package rgba

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// String formats color as "#rrggbbaa".
func (c Color) String() string {
	return Format(c, nil)
}

// Format formats color as hex digits in R, G, B, A order.
func Format(c Color, opt *FormatOptions) string {
	fopt := opt.normalize()

	raw := []byte{c.R, c.G, c.B, c.A}
	if fopt.OmitOpaqueAlpha && c.A == 0xff {
		raw = raw[:3]
	}

	digits := hex.EncodeToString(raw)
	if fopt.Upper {
		digits = strings.ToUpper(digits)
	}

	return fopt.Prefix + digits
}

// Parse parses a hex color. Accepted forms are rgb, rgba, rrggbb and
// rrggbbaa with an optional "#" or "0x" prefix. Missing alpha is 255.
func Parse(s string) (Color, error) {
	digits := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(digits, "#"):
		digits = digits[1:]
	case strings.HasPrefix(digits, "0x"), strings.HasPrefix(digits, "0X"):
		digits = digits[2:]
	}

	// Short forms duplicate each nibble.
	if len(digits) == 3 || len(digits) == 4 {
		var sb strings.Builder
		sb.Grow(len(digits) * 2)
		for i := 0; i < len(digits); i++ {
			sb.WriteByte(digits[i])
			sb.WriteByte(digits[i])
		}
		digits = sb.String()
	}

	if len(digits) != 6 && len(digits) != 8 {
		return Color{}, fmt.Errorf("%w: %q: expected 3, 4, 6 or 8 hex digits", ErrParse, s)
	}

	raw, err := hex.DecodeString(digits)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q: %v", ErrParse, s, err)
	}

	if len(raw) == 3 {
		return RGB(raw[0], raw[1], raw[2]), nil
	}

	return RGBA(raw[0], raw[1], raw[2], raw[3]), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return c
}

// MarshalBinary encodes color as 4 bytes in R, G, B, A order.
func (c Color) MarshalBinary() ([]byte, error) {
	return []byte{c.R, c.G, c.B, c.A}, nil
}

// UnmarshalBinary decodes 4 bytes in R, G, B, A order.
func (c *Color) UnmarshalBinary(data []byte) error {
	if len(data) != 4 {
		return fmt.Errorf("%w: got %d bytes, want 4", ErrInvalidLength, len(data))
	}

	*c = RGBA(data[0], data[1], data[2], data[3])
	return nil
}
