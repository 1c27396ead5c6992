package ui

import (
	"testing"

	"drawpad/internal/editor"
	"drawpad/internal/form"
	"drawpad/internal/render"
	"drawpad/pkg/canvas"
)

func fixedMeasure(s string) int { return len(s) * 7 }

func center(r Rect) (int, int) { return r.X + r.W/2, r.Y + r.H/2 }

func TestComputeLayoutStacksBars(t *testing.T) {
	theme := DefaultTheme()
	l := ComputeLayout(canvas.Width, canvas.Height, theme)
	if l.Width != 800 || l.Height != theme.MenuHeight+600+theme.StatusHeight {
		t.Fatalf("unexpected window size %dx%d", l.Width, l.Height)
	}
	if l.Canvas != (Rect{X: 0, Y: theme.MenuHeight, W: 800, H: 600}) {
		t.Fatalf("unexpected canvas rect %#v", l.Canvas)
	}
	if l.Status.Y != l.Canvas.Y+l.Canvas.H {
		t.Fatalf("status bar should sit under the canvas: %#v", l.Status)
	}
}

func TestDrawShellLeavesCanvasTransparent(t *testing.T) {
	theme := DefaultTheme()
	l := ComputeLayout(canvas.Width, canvas.Height, theme)
	fb := render.NewFrameBuffer(l.Width, l.Height)
	labels := DrawShell(fb, l, theme, "Ready")

	if got := fb.At(5, 5); got != theme.MenuBar {
		t.Fatalf("menu bar not painted: %v", got)
	}
	if got := fb.At(400, l.Canvas.Y+300); got.A != 0 {
		t.Fatalf("canvas area should stay transparent, got %v", got)
	}
	if len(labels) != 1 || labels[0].Text != "Ready" {
		t.Fatalf("unexpected status labels %#v", labels)
	}
}

func TestMenuBarClickFlow(t *testing.T) {
	theme := DefaultTheme()
	l := ComputeLayout(canvas.Width, canvas.Height, theme)
	m := NewMenuBar(DefaultMenus())
	m.Layout(l, theme, fixedMeasure)

	id, ok := m.Click(center(m.titles[1]))
	if ok || id != "" || m.OpenIndex != 1 {
		t.Fatalf("clicking a title should open it: open=%d id=%q", m.OpenIndex, id)
	}
	m.Layout(l, theme, fixedMeasure)
	if len(m.items) != 1 {
		t.Fatalf("expected one mosaic item, got %d", len(m.items))
	}
	if !m.Contains(center(m.items[0])) {
		t.Fatal("dropdown item should be inside the menu bar area")
	}

	id, ok = m.Click(center(m.items[0]))
	if !ok || id != editor.ActionGenerateMosaic {
		t.Fatalf("expected mosaic action, got %q ok=%v", id, ok)
	}
	if m.IsOpen() {
		t.Fatal("dropdown should close after choosing an item")
	}
}

func TestMenuBarToggleAndDismiss(t *testing.T) {
	theme := DefaultTheme()
	l := ComputeLayout(canvas.Width, canvas.Height, theme)
	m := NewMenuBar(DefaultMenus())
	m.Layout(l, theme, fixedMeasure)

	x, y := center(m.titles[0])
	m.Click(x, y)
	m.Click(x, y)
	if m.IsOpen() {
		t.Fatal("second click on a title should close it")
	}

	m.Click(x, y)
	m.Layout(l, theme, fixedMeasure)
	if _, ok := m.Click(400, 400); ok || m.IsOpen() {
		t.Fatal("clicking elsewhere should dismiss without an action")
	}

	m.Click(x, y)
	m.Hover(center(m.titles[2]))
	m.Layout(l, theme, fixedMeasure)
	if m.OpenIndex != 2 || len(m.items) != 2 {
		t.Fatalf("hover should switch to the canvas menu: open=%d items=%d", m.OpenIndex, len(m.items))
	}
	id, ok := m.Click(center(m.items[1]))
	if !ok || id != editor.ActionCopyCanvas {
		t.Fatalf("expected copy action, got %q", id)
	}
}

func TestMenuBarDrawLabels(t *testing.T) {
	theme := DefaultTheme()
	l := ComputeLayout(canvas.Width, canvas.Height, theme)
	fb := render.NewFrameBuffer(l.Width, l.Height)
	m := NewMenuBar(DefaultMenus())
	m.OpenIndex = 0
	m.Layout(l, theme, fixedMeasure)

	labels := m.Draw(fb, theme, -1, -1)
	want := []string{"Draw", "Mosaic", "Canvas", "Help", "Draw Object", "Ctrl+D"}
	if len(labels) != len(want) {
		t.Fatalf("expected %d labels, got %d", len(want), len(labels))
	}
	for i, w := range want {
		if labels[i].Text != w {
			t.Fatalf("label %d = %q, want %q", i, labels[i].Text, w)
		}
	}
	if labels[5].Align != AlignRight {
		t.Fatal("shortcut should be right aligned")
	}
	if got := fb.At(m.dropdown.X+5, m.dropdown.Y+5); got != theme.Dropdown {
		t.Fatalf("dropdown not painted: %v", got)
	}
}

func TestDialogLayoutHitTest(t *testing.T) {
	theme := DefaultTheme()
	l := ComputeLayout(canvas.Width, canvas.Height, theme)
	d := form.NewMosaicDialog(func(canvas.MosaicParams) error { return nil })
	v := LayoutDialog(d, l, theme, fixedMeasure)

	if len(v.Rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(v.Rows))
	}
	if !l.Canvas.Contains(v.Panel.X, v.Panel.Y) || !l.Canvas.Contains(v.Panel.X+v.Panel.W-1, v.Panel.Y+v.Panel.H-1) {
		t.Fatalf("dialog should fit inside the canvas area: %#v", v.Panel)
	}
	last := v.Rows[3].Options[3]
	if last.X+last.W > v.Panel.X+v.Panel.W {
		t.Fatalf("color options overflow the panel: %#v", last)
	}

	cases := []struct {
		name string
		x, y int
		want Hit
	}{
		{"outside", 0, 0, Hit{Kind: HitOutside}},
		{"confirm", v.Confirm.X + 1, v.Confirm.Y + 1, Hit{Kind: HitConfirm}},
		{"cancel", v.Cancel.X + 1, v.Cancel.Y + 1, Hit{Kind: HitCancel}},
		{"height field", v.Rows[1].Input.X + 5, v.Rows[1].Input.Y + 5, Hit{Kind: HitField, Field: 1}},
		{"block size 8x8", v.Rows[2].Options[2].X + 2, v.Rows[2].Options[2].Y + 2, Hit{Kind: HitOption, Field: 2, Option: 2}},
		{"yellow", last.X + 2, last.Y + 2, Hit{Kind: HitOption, Field: 3, Option: 3}},
		{"title", v.Title.X + 2, v.Title.Y + 10, Hit{Kind: HitNone}},
	}
	for _, tc := range cases {
		if got := v.HitTest(tc.x, tc.y); got != tc.want {
			t.Fatalf("%s: got %#v, want %#v", tc.name, got, tc.want)
		}
	}
}

func TestDrawDialogShowsError(t *testing.T) {
	theme := DefaultTheme()
	l := ComputeLayout(canvas.Width, canvas.Height, theme)
	fb := render.NewFrameBuffer(l.Width, l.Height)
	d := form.NewDrawObjectDialog(func(canvas.DrawObjectParams) error { return nil })
	d.InsertText("abc")
	d.Confirm()

	v := LayoutDialog(d, l, theme, fixedMeasure)
	labels := DrawDialog(fb, v, d, theme, true, fixedMeasure)

	var sawError, sawText bool
	for _, lb := range labels {
		if lb.Color == theme.ErrorText && lb.Box == v.Error {
			sawError = true
		}
		if lb.Text == "abc" {
			sawText = true
		}
	}
	if !sawError || !sawText {
		t.Fatalf("missing labels: error=%v text=%v", sawError, sawText)
	}
	if got := fb.At(v.Panel.X+10, v.Panel.Y+20); got != theme.Panel {
		t.Fatalf("panel not painted: %v", got)
	}
	if got := fb.At(2, l.Height-2); got.A != theme.Overlay.A {
		t.Fatalf("overlay not applied outside the panel: %v", got)
	}
}
