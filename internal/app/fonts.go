package app

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const uiFontSize = 13

type fontBank struct {
	regular font.Face
	bold    font.Face
}

// newFontBank builds the UI faces from the Go fonts, falling back to the
// fixed 7x13 bitmap face if parsing fails.
func newFontBank() fontBank {
	return fontBank{
		regular: loadFace(goregular.TTF),
		bold:    loadFace(gobold.TTF),
	}
}

func loadFace(ttf []byte) font.Face {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: uiFontSize, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

func (b fontBank) face(bold bool) font.Face {
	if bold {
		return b.bold
	}
	return b.regular
}

// measure returns the pixel advance of s, rounding 26.6 fixed point to the
// nearest pixel.
func measure(face font.Face, s string) int {
	if face == nil || s == "" {
		return 0
	}
	px := (int(font.MeasureString(face, s)) + 32) >> 6
	if px < 0 {
		px = 0
	}
	return px
}
