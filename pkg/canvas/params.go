package canvas

type DrawObjectParams struct {
	Width  int
	Height int
	Color  Color
}

func (p DrawObjectParams) Validate() error {
	if err := checkRange("width", p.Width, 1, 0); err != nil {
		return err
	}
	return checkRange("height", p.Height, 1, 0)
}

type MosaicParams struct {
	Width     int
	Height    int
	BlockSize int
	Colors    []Color
}

// Validate enforces the bounds the mosaic dialog promises: the area fits
// the canvas, the block size is one of BlockSizes and at least one color
// is chosen.
func (p MosaicParams) Validate() error {
	if err := checkRange("width", p.Width, 1, Width); err != nil {
		return err
	}
	if err := checkRange("height", p.Height, 1, Height); err != nil {
		return err
	}
	known := false
	for _, bs := range BlockSizes {
		if p.BlockSize == bs {
			known = true
			break
		}
	}
	if !known {
		return &RangeError{Field: "block size", Value: p.BlockSize, Min: BlockSizes[0], Max: BlockSizes[len(BlockSizes)-1]}
	}
	if len(p.Colors) == 0 {
		return ErrEmptySelection
	}
	return nil
}
