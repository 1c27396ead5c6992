package ui

import (
	"image/color"

	"drawpad/internal/render"
)

type Rect struct {
	X int
	Y int
	W int
	H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Label is text the window draws on top of the composed frame buffer,
// vertically centered in Box.
type Label struct {
	Text  string
	Box   Rect
	Align Align
	Bold  bool
	Color color.RGBA
}

// MeasureFunc returns the pixel advance of s in the UI face.
type MeasureFunc func(s string) int

type Layout struct {
	Width   int
	Height  int
	MenuH   int
	StatusH int
	Canvas  Rect
	Status  Rect
}

// ComputeLayout stacks the menu bar, a canvasW x canvasH drawing area and
// the status bar. The window is exactly as large as that stack.
func ComputeLayout(canvasW, canvasH int, theme Theme) Layout {
	menuH := theme.MenuHeight
	statusH := theme.StatusHeight
	return Layout{
		Width:   canvasW,
		Height:  menuH + canvasH + statusH,
		MenuH:   menuH,
		StatusH: statusH,
		Canvas:  Rect{X: 0, Y: menuH, W: canvasW, H: canvasH},
		Status:  Rect{X: 0, Y: menuH + canvasH, W: canvasW, H: statusH},
	}
}

// DrawShell paints the menu bar and status bar backgrounds. The canvas area
// is left untouched for the canvas layer.
func DrawShell(fb *render.FrameBuffer, layout Layout, theme Theme, status string) []Label {
	fb.Clear(color.RGBA{})
	fb.FillRect(0, 0, layout.Width, layout.MenuH, theme.MenuBar)
	fb.FillRect(layout.Status.X, layout.Status.Y, layout.Status.W, layout.Status.H, theme.StatusBar)
	fb.StrokeRect(layout.Status.X, layout.Status.Y, layout.Status.W, layout.Status.H, 1, theme.Border)

	return []Label{{
		Text:  status,
		Box:   Rect{X: layout.Status.X + 10, Y: layout.Status.Y, W: layout.Status.W - 20, H: layout.Status.H},
		Color: theme.Text,
	}}
}
