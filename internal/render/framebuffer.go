package render

import (
	"image"
	"image/color"
)

// FrameBuffer is a row-major RGBA buffer in the layout ebiten's WritePixels
// expects (alpha-premultiplied, 4 bytes per pixel).
type FrameBuffer struct {
	W      int
	H      int
	Pixels []uint8 // RGBA
}

func NewFrameBuffer(w, h int) *FrameBuffer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FrameBuffer{W: w, H: h, Pixels: make([]uint8, w*h*4)}
}

func (fb *FrameBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.W, fb.H)
}

// clip returns the part of the w x h rectangle at (x, y) inside the buffer.
func (fb *FrameBuffer) clip(x, y, w, h int) image.Rectangle {
	if w <= 0 || h <= 0 {
		return image.Rectangle{}
	}
	return image.Rect(x, y, x+w, y+h).Intersect(fb.Bounds())
}

func (fb *FrameBuffer) Clear(c color.RGBA) {
	fb.FillRect(0, 0, fb.W, fb.H, c)
}

func (fb *FrameBuffer) FillRect(x, y, w, h int, c color.RGBA) {
	r := fb.clip(x, y, w, h)
	if r.Empty() {
		return
	}
	rowLen := r.Dx() * 4
	first := (r.Min.Y*fb.W + r.Min.X) * 4
	row := fb.Pixels[first : first+rowLen]
	for i := 0; i < rowLen; i += 4 {
		row[i+0] = c.R
		row[i+1] = c.G
		row[i+2] = c.B
		row[i+3] = c.A
	}
	for yy := r.Min.Y + 1; yy < r.Max.Y; yy++ {
		off := (yy*fb.W + r.Min.X) * 4
		copy(fb.Pixels[off:off+rowLen], row)
	}
}

func (fb *FrameBuffer) StrokeRect(x, y, w, h, line int, c color.RGBA) {
	if line <= 0 {
		line = 1
	}
	fb.FillRect(x, y, w, line, c)
	fb.FillRect(x, y+h-line, w, line, c)
	fb.FillRect(x, y, line, h, c)
	fb.FillRect(x+w-line, y, line, h, c)
}

// BlendRect composites c over the existing pixels. c is taken as
// premultiplied, like every other color written to the buffer.
func (fb *FrameBuffer) BlendRect(x, y, w, h int, c color.RGBA) {
	if c.A == 0xFF {
		fb.FillRect(x, y, w, h, c)
		return
	}
	r := fb.clip(x, y, w, h)
	if r.Empty() || c.A == 0 {
		return
	}
	inv := uint32(0xFF - c.A)
	for yy := r.Min.Y; yy < r.Max.Y; yy++ {
		off := (yy*fb.W + r.Min.X) * 4
		for xx := 0; xx < r.Dx(); xx++ {
			p := fb.Pixels[off+xx*4 : off+xx*4+4]
			p[0] = c.R + uint8(uint32(p[0])*inv/0xFF)
			p[1] = c.G + uint8(uint32(p[1])*inv/0xFF)
			p[2] = c.B + uint8(uint32(p[2])*inv/0xFF)
			p[3] = c.A + uint8(uint32(p[3])*inv/0xFF)
		}
	}
}

// At returns the pixel at (x, y), or the zero color outside the buffer.
func (fb *FrameBuffer) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= fb.W || y >= fb.H {
		return color.RGBA{}
	}
	i := (y*fb.W + x) * 4
	return color.RGBA{R: fb.Pixels[i], G: fb.Pixels[i+1], B: fb.Pixels[i+2], A: fb.Pixels[i+3]}
}

// Image wraps the buffer as an *image.RGBA without copying.
func (fb *FrameBuffer) Image() *image.RGBA {
	return &image.RGBA{Pix: fb.Pixels, Stride: fb.W * 4, Rect: fb.Bounds()}
}
