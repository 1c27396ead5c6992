package canvas

import (
	"image/color"
	"strings"
)

// Color is one of the fixed palette entries. The zero value is Black.
type Color uint8

const (
	Black Color = iota
	Red
	Green
	Blue
	Yellow
	White
)

var colorTable = [...]struct {
	name string
	rgba color.RGBA
}{
	Black:  {"Black", color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}},
	Red:    {"Red", color.RGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF}},
	Green:  {"Green", color.RGBA{R: 0x00, G: 0xFF, B: 0x00, A: 0xFF}},
	Blue:   {"Blue", color.RGBA{R: 0x00, G: 0x00, B: 0xFF, A: 0xFF}},
	Yellow: {"Yellow", color.RGBA{R: 0xFF, G: 0xFF, B: 0x00, A: 0xFF}},
	White:  {"White", color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}},
}

// ObjectColors are the colors offered for a single drawn object.
var ObjectColors = []Color{Red, Green, Blue}

// MosaicColors are the colors a mosaic may be built from.
var MosaicColors = []Color{Red, Green, Blue, Yellow}

func (c Color) valid() bool { return int(c) < len(colorTable) }

func (c Color) String() string {
	if !c.valid() {
		return colorTable[Black].name
	}
	return colorTable[c].name
}

// RGBA returns the opaque RGBA value of c. Unknown values render as Black.
func (c Color) RGBA() color.RGBA {
	if !c.valid() {
		return colorTable[Black].rgba
	}
	return colorTable[c].rgba
}

// ARGB packs c as 0xAARRGGBB.
func (c Color) ARGB() uint32 {
	return ARGB(c.RGBA())
}

// ARGB packs an RGBA value as 0xAARRGGBB.
func ARGB(c color.RGBA) uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// ParseColor maps a palette label to its Color. Unknown labels are Black.
func ParseColor(name string) Color {
	name = strings.TrimSpace(name)
	for i, entry := range colorTable {
		if strings.EqualFold(entry.name, name) {
			return Color(i)
		}
	}
	return Black
}

// ColorNames returns the labels of cs in order.
func ColorNames(cs []Color) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return out
}
