package form

import (
	"errors"
	"testing"

	"drawpad/pkg/canvas"
)

func fill(d *Dialog, field int, text string) {
	d.SetFocus(field)
	d.InsertText(text)
}

func TestDrawObjectDialogConfirm(t *testing.T) {
	var got []canvas.DrawObjectParams
	d := NewDrawObjectDialog(func(p canvas.DrawObjectParams) error {
		got = append(got, p)
		return nil
	})
	fill(d, 0, "100")
	fill(d, 1, " 50")
	d.Select(2, 2)

	if !d.Confirm() {
		t.Fatalf("confirm failed: %v", d.Err())
	}
	if d.Open() {
		t.Fatal("dialog should close after a successful confirm")
	}
	if len(got) != 1 {
		t.Fatalf("expected one apply call, got %d", len(got))
	}
	want := canvas.DrawObjectParams{Width: 100, Height: 50, Color: canvas.Blue}
	if got[0] != want {
		t.Fatalf("unexpected params %#v", got[0])
	}
}

func TestDrawObjectDialogParseErrorLeavesCanvas(t *testing.T) {
	surface := canvas.New()
	d := NewDrawObjectDialog(func(p canvas.DrawObjectParams) error {
		surface.DrawObject(p.Width, p.Height, p.Color)
		return nil
	})
	fill(d, 0, "abc")
	fill(d, 1, "10")

	if d.Confirm() {
		t.Fatal("confirm should fail on non-numeric width")
	}
	var parseErr *ParseError
	if !errors.As(d.Err(), &parseErr) {
		t.Fatalf("expected ParseError, got %v", d.Err())
	}
	if parseErr.Field != "width" || parseErr.Input != "abc" {
		t.Fatalf("unexpected parse error %#v", parseErr)
	}
	if !d.Open() {
		t.Fatal("dialog must stay open after a validation failure")
	}
	if got := surface.ARGBAt(400, 300); got != canvas.White.ARGB() {
		t.Fatalf("canvas modified: %#08x", got)
	}
}

func TestDrawObjectDialogRejectsNonPositive(t *testing.T) {
	called := false
	d := NewDrawObjectDialog(func(canvas.DrawObjectParams) error {
		called = true
		return nil
	})
	fill(d, 0, "0")
	fill(d, 1, "10")

	if d.Confirm() {
		t.Fatal("confirm should fail")
	}
	var rangeErr *canvas.RangeError
	if !errors.As(d.Err(), &rangeErr) {
		t.Fatalf("expected RangeError, got %v", d.Err())
	}
	if called {
		t.Fatal("apply must not run on invalid input")
	}

	d.SetFocus(0)
	d.Backspace()
	d.InsertText("5")
	if !d.Confirm() {
		t.Fatalf("confirm after fixing input failed: %v", d.Err())
	}
	if d.Err() != nil {
		t.Fatalf("error should clear on success, got %v", d.Err())
	}
}

func TestMosaicDialogDefaultsAndSelection(t *testing.T) {
	var got canvas.MosaicParams
	d := NewMosaicDialog(func(p canvas.MosaicParams) error {
		got = p
		return nil
	})
	fill(d, 0, "64")
	fill(d, 1, "32")
	d.Select(2, 1)
	d.Toggle(3, 0)
	d.Toggle(3, 2)

	if !d.Confirm() {
		t.Fatalf("confirm failed: %v", d.Err())
	}
	if got.Width != 64 || got.Height != 32 || got.BlockSize != 4 {
		t.Fatalf("unexpected params %#v", got)
	}
	if len(got.Colors) != 2 || got.Colors[0] != canvas.Green || got.Colors[1] != canvas.Yellow {
		t.Fatalf("unexpected colors %v", got.Colors)
	}
}

func TestMosaicDialogRequiresAColor(t *testing.T) {
	d := NewMosaicDialog(func(canvas.MosaicParams) error { return nil })
	fill(d, 0, "8")
	fill(d, 1, "8")
	for i := range canvas.MosaicColors {
		d.Toggle(3, i)
	}
	if d.Confirm() {
		t.Fatal("confirm should fail without colors")
	}
	if !errors.Is(d.Err(), canvas.ErrEmptySelection) {
		t.Fatalf("expected ErrEmptySelection, got %v", d.Err())
	}
}

func TestMosaicDialogRejectsOversizedArea(t *testing.T) {
	d := NewMosaicDialog(func(canvas.MosaicParams) error { return nil })
	fill(d, 0, "801")
	fill(d, 1, "10")
	if d.Confirm() {
		t.Fatal("confirm should fail")
	}
	var rangeErr *canvas.RangeError
	if !errors.As(d.Err(), &rangeErr) || rangeErr.Max != canvas.Width {
		t.Fatalf("expected width RangeError, got %v", d.Err())
	}
}

func TestDialogStaysOpenWhenApplyFails(t *testing.T) {
	boom := errors.New("boom")
	d := NewMosaicDialog(func(canvas.MosaicParams) error { return boom })
	fill(d, 0, "8")
	fill(d, 1, "8")
	if d.Confirm() {
		t.Fatal("confirm should report the apply failure")
	}
	if !errors.Is(d.Err(), boom) || !d.Open() {
		t.Fatalf("unexpected state: open=%v err=%v", d.Open(), d.Err())
	}
}

func TestCancelSkipsApply(t *testing.T) {
	called := false
	d := NewDrawObjectDialog(func(canvas.DrawObjectParams) error {
		called = true
		return nil
	})
	fill(d, 0, "10")
	fill(d, 1, "10")
	d.Cancel()
	if d.Open() || called {
		t.Fatalf("cancel: open=%v called=%v", d.Open(), called)
	}
	if d.Confirm() {
		t.Fatal("confirm on a closed dialog must be ignored")
	}
}

func TestFocusWrapsAndEditsFocusedField(t *testing.T) {
	d := NewMosaicDialog(func(canvas.MosaicParams) error { return nil })
	d.FocusPrev()
	if d.Focus() != 3 {
		t.Fatalf("expected focus to wrap to last field, got %d", d.Focus())
	}
	d.FocusNext()
	d.FocusNext()
	d.InsertText("12\x0734")
	if got := d.Fields[1].Text; got != "1234" {
		t.Fatalf("unexpected text %q", got)
	}
	d.SetFocus(2)
	d.Cycle(-1)
	if d.Fields[2].Selected != 2 {
		t.Fatalf("expected cycle to wrap to 8x8, got %d", d.Fields[2].Selected)
	}
	d.InsertText("9")
	if d.Fields[2].Text != "" {
		t.Fatal("choice fields must ignore text")
	}
}

func TestTextFieldLengthCap(t *testing.T) {
	f := TextField("Width")
	f.InsertText("12345678901234567890")
	if len(f.Text) != maxTextLen {
		t.Fatalf("expected %d runes, got %q", maxTextLen, f.Text)
	}
	f.Backspace()
	if len(f.Text) != maxTextLen-1 {
		t.Fatalf("backspace failed: %q", f.Text)
	}
}
