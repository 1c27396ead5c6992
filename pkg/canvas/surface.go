// Package canvas holds the fixed-size pixel surface the drawing tools paint
// on, together with the closed color palette they paint with.
package canvas

import (
	"image"
	"image/color"
	"math/rand/v2"

	"drawpad/internal/render"
)

const (
	Width  = 800
	Height = 600
)

// BlockSizes are the mosaic cell sizes offered to the user.
var BlockSizes = []int{2, 4, 8}

// Surface owns the canvas pixels. It is not safe for concurrent use; every
// operation runs to completion on the caller's goroutine.
type Surface struct {
	fb       *render.FrameBuffer
	rng      *rand.Rand
	onRedraw func()
}

type Option func(*Surface)

// WithSeed makes mosaic generation reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Surface) {
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	}
}

// WithRedrawHandler registers fn to be called after every mutation.
func WithRedrawHandler(fn func()) Option {
	return func(s *Surface) { s.onRedraw = fn }
}

func New(opts ...Option) *Surface {
	s := &Surface{fb: render.NewFrameBuffer(Width, Height)}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s.fb.Clear(White.RGBA())
	return s
}

// SetRedrawHandler replaces the mutation callback; nil disables it.
func (s *Surface) SetRedrawHandler(fn func()) { s.onRedraw = fn }

func (s *Surface) redraw() {
	if s.onRedraw != nil {
		s.onRedraw()
	}
}

func (s *Surface) Size() (int, int) { return s.fb.W, s.fb.H }

func (s *Surface) Clear() {
	s.fb.Clear(White.RGBA())
	s.redraw()
}

// DrawObject fills a width x height rectangle centered on the canvas,
// clipped to its bounds. A degenerate rectangle leaves the canvas untouched.
func (s *Surface) DrawObject(width, height int, c Color) {
	if width <= 0 || height <= 0 {
		return
	}
	x := s.fb.W/2 - width/2
	y := s.fb.H/2 - height/2
	s.fb.FillRect(x, y, width, height, c.RGBA())
	s.redraw()
}

// GenerateMosaic repaints the canvas white and tiles [0,width) x [0,height)
// with blockSize cells, each filled with a color picked uniformly from
// colors. Strips narrower than a cell on the right and bottom stay white.
func (s *Surface) GenerateMosaic(width, height, blockSize int, colors []Color) error {
	if err := checkRange("block size", blockSize, 1, 0); err != nil {
		return err
	}
	if len(colors) == 0 {
		return ErrEmptySelection
	}

	cols := width / blockSize
	rows := height / blockSize

	s.fb.Clear(White.RGBA())
	for i := 0; i < cols; i++ {
		for j := 0; j < rows; j++ {
			c := colors[s.rng.IntN(len(colors))]
			s.fb.FillRect(i*blockSize, j*blockSize, blockSize, blockSize, c.RGBA())
		}
	}
	s.redraw()
	return nil
}

func (s *Surface) At(x, y int) color.RGBA { return s.fb.At(x, y) }

// ARGBAt returns the pixel at (x, y) packed as 0xAARRGGBB.
func (s *Surface) ARGBAt(x, y int) uint32 { return ARGB(s.fb.At(x, y)) }

// Pixels exposes the RGBA buffer for display. Callers must not retain it
// across mutations if they need a stable copy.
func (s *Surface) Pixels() []byte { return s.fb.Pixels }

// Image shares the canvas memory as an *image.RGBA.
func (s *Surface) Image() *image.RGBA { return s.fb.Image() }
