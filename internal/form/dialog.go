// Package form models the modal parameter dialogs: their fields, focus,
// validation and the callback run when the user confirms.
package form

import (
	"fmt"
	"strconv"
	"strings"

	"drawpad/pkg/canvas"
)

// ParseError reports text in a numeric field that is not a base-10 integer.
type ParseError struct {
	Field string
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q is not a whole number", e.Field, e.Input)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Dialog is a modal form. It stays open until Confirm succeeds or Cancel
// is called.
type Dialog struct {
	Title        string
	ConfirmLabel string
	Fields       []*Field

	focus  int
	open   bool
	err    error
	submit func(*Dialog) error
}

func newDialog(title, confirm string, submit func(*Dialog) error, fields ...*Field) *Dialog {
	return &Dialog{
		Title:        title,
		ConfirmLabel: confirm,
		Fields:       fields,
		open:         true,
		submit:       submit,
	}
}

func (d *Dialog) Open() bool { return d.open }

// Err is the validation or apply error from the last Confirm, if any.
func (d *Dialog) Err() error { return d.err }

func (d *Dialog) Focus() int { return d.focus }

func (d *Dialog) Focused() *Field {
	if d.focus < 0 || d.focus >= len(d.Fields) {
		return nil
	}
	return d.Fields[d.focus]
}

func (d *Dialog) SetFocus(i int) {
	if i < 0 || i >= len(d.Fields) {
		return
	}
	d.focus = i
}

func (d *Dialog) FocusNext() { d.moveFocus(1) }
func (d *Dialog) FocusPrev() { d.moveFocus(-1) }

func (d *Dialog) moveFocus(delta int) {
	n := len(d.Fields)
	if n == 0 {
		return
	}
	d.focus = ((d.focus+delta)%n + n) % n
}

func (d *Dialog) InsertText(s string) {
	if f := d.Focused(); f != nil {
		f.InsertText(s)
	}
}

func (d *Dialog) Backspace() {
	if f := d.Focused(); f != nil {
		f.Backspace()
	}
}

func (d *Dialog) Cycle(delta int) {
	if f := d.Focused(); f != nil {
		f.Cycle(delta)
	}
}

func (d *Dialog) Select(field, option int) {
	if field < 0 || field >= len(d.Fields) {
		return
	}
	d.focus = field
	d.Fields[field].Select(option)
}

func (d *Dialog) Toggle(field, option int) {
	if field < 0 || field >= len(d.Fields) {
		return
	}
	d.focus = field
	d.Fields[field].Toggle(option)
}

// Confirm validates the fields and runs the dialog's operation. It returns
// true when the operation succeeded and the dialog closed.
func (d *Dialog) Confirm() bool {
	if !d.open {
		return false
	}
	if err := d.submit(d); err != nil {
		d.err = err
		return false
	}
	d.err = nil
	d.open = false
	return true
}

func (d *Dialog) Cancel() {
	d.open = false
	d.err = nil
}

func parseInt(f *Field) (int, error) {
	in := strings.TrimSpace(f.Text)
	v, err := strconv.Atoi(in)
	if err != nil {
		return 0, &ParseError{Field: strings.ToLower(f.Label), Input: f.Text, Err: err}
	}
	return v, nil
}

// NewDrawObjectDialog collects a rectangle size and color and hands them
// to apply.
func NewDrawObjectDialog(apply func(canvas.DrawObjectParams) error) *Dialog {
	width := TextField("Width")
	height := TextField("Height")
	colors := ChoiceField("Color", canvas.ColorNames(canvas.ObjectColors))

	return newDialog("Draw Object", "Draw", func(d *Dialog) error {
		w, err := parseInt(width)
		if err != nil {
			return err
		}
		h, err := parseInt(height)
		if err != nil {
			return err
		}
		p := canvas.DrawObjectParams{Width: w, Height: h, Color: canvas.ObjectColors[colors.Selected]}
		if err := p.Validate(); err != nil {
			return err
		}
		return apply(p)
	}, width, height, colors)
}

// NewMosaicDialog collects the mosaic area, block size and colors and
// hands them to apply.
func NewMosaicDialog(apply func(canvas.MosaicParams) error) *Dialog {
	width := TextField("Width")
	height := TextField("Height")
	sizeLabels := make([]string, len(canvas.BlockSizes))
	for i, bs := range canvas.BlockSizes {
		sizeLabels[i] = fmt.Sprintf("%dx%d", bs, bs)
	}
	blockSize := ChoiceField("Block Size", sizeLabels)
	colors := MultiChoiceField("Colors", canvas.ColorNames(canvas.MosaicColors))

	return newDialog("Generate Mosaic", "Generate", func(d *Dialog) error {
		w, err := parseInt(width)
		if err != nil {
			return err
		}
		h, err := parseInt(height)
		if err != nil {
			return err
		}
		var chosen []canvas.Color
		for _, i := range colors.CheckedOptions() {
			chosen = append(chosen, canvas.MosaicColors[i])
		}
		p := canvas.MosaicParams{
			Width:     w,
			Height:    h,
			BlockSize: canvas.BlockSizes[blockSize.Selected],
			Colors:    chosen,
		}
		if err := p.Validate(); err != nil {
			return err
		}
		return apply(p)
	}, width, height, blockSize, colors)
}
