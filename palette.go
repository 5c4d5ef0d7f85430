package rgba

import "strings"

// Named colors.
//
// Go has no struct constants, so these are package variables. They must
// not be reassigned; Named returns the same values from a private table
// and is unaffected if a caller does.
var (
	Transparent = RGBA(0, 0, 0, 0)
	Red         = RGB(0xff, 0, 0)
	Green       = RGB(0, 0xff, 0)
	Blue        = RGB(0, 0, 0xff)
	Cyan        = RGB(0, 0xff, 0xff)
	Magenta     = RGB(0xff, 0, 0xff)
	Yellow      = RGB(0xff, 0xff, 0)
	White       = RGB(0xff, 0xff, 0xff)
	Black       = RGB(0, 0, 0)
	Grey        = RGB(0x7f, 0x7f, 0x7f)
)

// palette backs Named.
var palette = map[string]Color{
	"transparent": RGBA(0, 0, 0, 0),
	"red":         RGB(0xff, 0, 0),
	"green":       RGB(0, 0xff, 0),
	"blue":        RGB(0, 0, 0xff),
	"cyan":        RGB(0, 0xff, 0xff),
	"magenta":     RGB(0xff, 0, 0xff),
	"yellow":      RGB(0xff, 0xff, 0),
	"white":       RGB(0xff, 0xff, 0xff),
	"black":       RGB(0, 0, 0),
	"grey":        RGB(0x7f, 0x7f, 0x7f),
}

// Named returns a palette color by case-insensitive name.
func Named(name string) (Color, bool) {
	c, ok := palette[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}
