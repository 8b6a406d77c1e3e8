package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
)

// PX is a CSS pixel, which is 3/4 of a printer's point.
var PX = dimen.PT * 3 / 4

// Absolute values for the border width keywords and the initial font size.
var (
	BorderWidthThin   = 1 * PX
	BorderWidthMedium = 3 * PX
	BorderWidthThick  = 5 * PX
	DefaultFontSize   = 16 * PX
)

// DimenProperty formats a length in its computed form, i.e. in scaled points.
func DimenProperty(d dimen.DU) Property {
	return Property(fmt.Sprintf("%dsp", int64(d)))
}

// Dimen returns the length of a property in computed form ("<n>sp").
// ok is false if p does not hold a computed length.
func (p Property) Dimen() (d dimen.DU, ok bool) {
	s := string(p)
	if !strings.HasSuffix(s, "sp") {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.TrimSuffix(s, "sp"), 10, 64)
	if err != nil {
		return 0, false
	}
	return dimen.DU(n), true
}

var namedColors = map[Property]color.RGBA{
	"black":   {0, 0, 0, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"red":     {0xff, 0, 0, 0xff},
	"green":   {0, 0x80, 0, 0xff},
	"lime":    {0, 0xff, 0, 0xff},
	"blue":    {0, 0, 0xff, 0xff},
	"gray":    {0x80, 0x80, 0x80, 0xff},
	"grey":    {0x80, 0x80, 0x80, 0xff},
	"silver":  {0xc0, 0xc0, 0xc0, 0xff},
	"yellow":  {0xff, 0xff, 0, 0xff},
	"orange":  {0xff, 0xa5, 0, 0xff},
	"purple":  {0x80, 0, 0x80, 0xff},
	"navy":    {0, 0, 0x80, 0xff},
	"maroon":  {0x80, 0, 0, 0xff},
	"teal":    {0, 0x80, 0x80, 0xff},
	"olive":   {0x80, 0x80, 0, 0xff},
	"fuchsia": {0xff, 0, 0xff, 0xff},
	"aqua":    {0, 0xff, 0xff, 0xff},
}

// Color converts a property value to a color. Named colors and hex notation
// (#rgb, #rrggbb) are supported. "transparent" results in a fully transparent
// color. Keywords which have to be resolved against other properties, like
// "currentcolor", return nil.
func (p Property) Color() color.Color {
	if p == "transparent" {
		return color.RGBA{}
	}
	if c, ok := namedColors[p]; ok {
		return c
	}
	if strings.HasPrefix(string(p), "#") {
		if c, ok := parseHexColor(string(p[1:])); ok {
			return c
		}
	}
	return nil
}

func parseHexColor(h string) (color.RGBA, bool) {
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
	default:
		return color.RGBA{}, false
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{uint8(n >> 16), uint8(n >> 8), uint8(n), 0xff}, true
}

// ColorString returns a hex representation of a color, or the name of a
// color if it is one of the basic named colors.
func ColorString(c color.Color) string {
	if c == nil {
		return "currentcolor"
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return "transparent"
	}
	rgba := color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	for _, name := range []Property{"black", "white", "red", "green", "blue", "purple"} {
		if namedColors[name] == rgba {
			return string(name)
		}
	}
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}
