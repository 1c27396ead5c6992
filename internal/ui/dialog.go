package ui

import (
	"drawpad/internal/form"
	"drawpad/internal/render"
)

const (
	dialogW       = 440
	dialogPad     = 20
	dialogTitleH  = 40
	dialogLabelW  = 100
	dialogErrorH  = 26
	dialogButtonW = 88
	dialogButtonH = 30
	optionGap     = 6
	checkboxSize  = 16
)

type FieldRow struct {
	Label   Rect
	Input   Rect
	Options []Rect
}

// DialogView is the computed geometry of a form.Dialog.
type DialogView struct {
	Panel   Rect
	Title   Rect
	Rows    []FieldRow
	Error   Rect
	Confirm Rect
	Cancel  Rect
}

type HitKind int

const (
	HitNone HitKind = iota
	HitOutside
	HitField
	HitOption
	HitConfirm
	HitCancel
)

type Hit struct {
	Kind   HitKind
	Field  int
	Option int
}

// LayoutDialog centers the dialog over the canvas area.
func LayoutDialog(d *form.Dialog, layout Layout, theme Theme, measure MeasureFunc) DialogView {
	rowH := theme.RowHeight
	h := dialogTitleH + len(d.Fields)*(rowH+8) + dialogErrorH + dialogButtonH + dialogPad
	x := layout.Canvas.X + (layout.Canvas.W-dialogW)/2
	y := layout.Canvas.Y + (layout.Canvas.H-h)/2

	v := DialogView{
		Panel: Rect{X: x, Y: y, W: dialogW, H: h},
		Title: Rect{X: x + dialogPad, Y: y, W: dialogW - dialogPad*2, H: dialogTitleH},
	}
	inputX := x + dialogPad + dialogLabelW
	inputW := dialogW - dialogPad*2 - dialogLabelW
	rowY := y + dialogTitleH
	for _, f := range d.Fields {
		row := FieldRow{
			Label: Rect{X: x + dialogPad, Y: rowY, W: dialogLabelW, H: rowH},
			Input: Rect{X: inputX, Y: rowY, W: inputW, H: rowH},
		}
		ox := inputX
		for _, opt := range f.Options {
			w := measure(opt) + 20
			if f.Kind == form.KindMultiChoice {
				w = measure(opt) + checkboxSize + 16
			}
			row.Options = append(row.Options, Rect{X: ox, Y: rowY, W: w, H: rowH})
			ox += w + optionGap
		}
		v.Rows = append(v.Rows, row)
		rowY += rowH + 8
	}
	v.Error = Rect{X: x + dialogPad, Y: rowY, W: dialogW - dialogPad*2, H: dialogErrorH}
	by := rowY + dialogErrorH
	v.Cancel = Rect{X: x + dialogW - dialogPad - dialogButtonW, Y: by, W: dialogButtonW, H: dialogButtonH}
	v.Confirm = Rect{X: v.Cancel.X - 10 - dialogButtonW, Y: by, W: dialogButtonW, H: dialogButtonH}
	return v
}

func (v DialogView) HitTest(x, y int) Hit {
	if !v.Panel.Contains(x, y) {
		return Hit{Kind: HitOutside}
	}
	if v.Confirm.Contains(x, y) {
		return Hit{Kind: HitConfirm}
	}
	if v.Cancel.Contains(x, y) {
		return Hit{Kind: HitCancel}
	}
	for i, row := range v.Rows {
		for j, r := range row.Options {
			if r.Contains(x, y) {
				return Hit{Kind: HitOption, Field: i, Option: j}
			}
		}
		if row.Input.Contains(x, y) || row.Label.Contains(x, y) {
			return Hit{Kind: HitField, Field: i}
		}
	}
	return Hit{Kind: HitNone}
}

// DrawDialog dims the window and paints the dialog chrome. caretOn
// controls the blinking text caret of the focused text field.
func DrawDialog(fb *render.FrameBuffer, v DialogView, d *form.Dialog, theme Theme, caretOn bool, measure MeasureFunc) []Label {
	fb.BlendRect(0, 0, fb.W, fb.H, theme.Overlay)

	p := v.Panel
	fb.FillRect(p.X+3, p.Y+3, p.W, p.H, theme.Border)
	fb.FillRect(p.X, p.Y, p.W, p.H, theme.Panel)
	fb.StrokeRect(p.X, p.Y, p.W, p.H, 1, theme.Border)
	fb.FillRect(p.X, p.Y, p.W, 3, theme.Accent)

	labels := []Label{{Text: d.Title, Box: v.Title, Bold: true, Color: theme.Text}}
	for i, f := range d.Fields {
		row := v.Rows[i]
		focused := i == d.Focus()
		labels = append(labels, Label{Text: f.Label + ":", Box: row.Label, Color: theme.MutedText})

		switch f.Kind {
		case form.KindText:
			in := row.Input
			bg, border := theme.Input, theme.Border
			if focused {
				bg, border = theme.InputFocus, theme.Accent
			}
			fb.FillRect(in.X, in.Y, in.W, in.H, bg)
			fb.StrokeRect(in.X, in.Y, in.W, in.H, 1, border)
			textBox := Rect{X: in.X + 8, Y: in.Y, W: in.W - 16, H: in.H}
			labels = append(labels, Label{Text: f.Text, Box: textBox, Color: theme.Text})
			if focused && caretOn {
				cx := textBox.X + measure(f.Text) + 1
				fb.FillRect(cx, in.Y+6, 1, in.H-12, theme.Accent)
			}
		case form.KindChoice:
			for j, r := range row.Options {
				bg := theme.Input
				if j == f.Selected {
					bg = theme.Button
				}
				fb.FillRect(r.X, r.Y, r.W, r.H, bg)
				border := theme.Border
				if j == f.Selected {
					border = theme.Accent
				}
				fb.StrokeRect(r.X, r.Y, r.W, r.H, 1, border)
				labels = append(labels, Label{Text: f.Options[j], Box: r, Align: AlignCenter, Bold: j == f.Selected, Color: theme.Text})
			}
		case form.KindMultiChoice:
			for j, r := range row.Options {
				box := Rect{X: r.X + 6, Y: r.Y + (r.H-checkboxSize)/2, W: checkboxSize, H: checkboxSize}
				fb.FillRect(box.X, box.Y, box.W, box.H, theme.Input)
				border := theme.Border
				if focused {
					border = theme.Accent
				}
				fb.StrokeRect(box.X, box.Y, box.W, box.H, 1, border)
				if f.Checked[j] {
					fb.FillRect(box.X+4, box.Y+4, box.W-8, box.H-8, theme.Accent)
				}
				text := Rect{X: box.X + box.W + 4, Y: r.Y, W: r.W - box.W - 10, H: r.H}
				labels = append(labels, Label{Text: f.Options[j], Box: text, Color: theme.Text})
			}
		}
	}

	if err := d.Err(); err != nil {
		labels = append(labels, Label{Text: err.Error(), Box: v.Error, Color: theme.ErrorText})
	}

	fb.FillRect(v.Confirm.X, v.Confirm.Y, v.Confirm.W, v.Confirm.H, theme.Button)
	fb.StrokeRect(v.Confirm.X, v.Confirm.Y, v.Confirm.W, v.Confirm.H, 1, theme.Accent)
	fb.FillRect(v.Cancel.X, v.Cancel.Y, v.Cancel.W, v.Cancel.H, theme.Input)
	fb.StrokeRect(v.Cancel.X, v.Cancel.Y, v.Cancel.W, v.Cancel.H, 1, theme.Border)
	labels = append(labels,
		Label{Text: d.ConfirmLabel, Box: v.Confirm, Align: AlignCenter, Bold: true, Color: theme.Text},
		Label{Text: "Cancel", Box: v.Cancel, Align: AlignCenter, Color: theme.Text},
	)
	return labels
}
