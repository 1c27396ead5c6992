package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/sirupsen/logrus"

	"drawpad/internal/editor"
	"drawpad/internal/form"
	"drawpad/internal/platform"
	"drawpad/internal/render"
	"drawpad/internal/ui"
	"drawpad/pkg/canvas"
)

type Config struct {
	// Seed makes mosaics reproducible; 0 draws a fresh seed.
	Seed uint64
	// Scale multiplies the window size; the logical resolution is fixed.
	Scale float64
}

type App struct {
	cfg    Config
	theme  ui.Theme
	layout ui.Layout
	state  *editor.State
	menu   *ui.MenuBar
	fonts  fontBank

	shellFB   *render.FrameBuffer
	dialogFB  *render.FrameBuffer
	shellImg  *ebiten.Image
	canvasImg *ebiten.Image
	dialogImg *ebiten.Image

	dialogView ui.DialogView
	frameTick  uint64
}

func New(cfg Config, sys platform.Services) *App {
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}
	if cfg.Scale > 3 {
		cfg.Scale = 3
	}
	var opts []canvas.Option
	if cfg.Seed != 0 {
		opts = append(opts, canvas.WithSeed(cfg.Seed))
	}
	theme := ui.DefaultTheme()
	layout := ui.ComputeLayout(canvas.Width, canvas.Height, theme)
	return &App{
		cfg:      cfg,
		theme:    theme,
		layout:   layout,
		state:    editor.NewState(canvas.New(opts...), sys),
		menu:     ui.NewMenuBar(ui.DefaultMenus()),
		fonts:    newFontBank(),
		shellFB:  render.NewFrameBuffer(layout.Width, layout.Height),
		dialogFB: render.NewFrameBuffer(layout.Width, layout.Height),
	}
}

func (a *App) Run() error {
	ebiten.SetWindowTitle("Drawing App")
	ebiten.SetWindowSize(int(float64(a.layout.Width)*a.cfg.Scale), int(float64(a.layout.Height)*a.cfg.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	logrus.WithFields(logrus.Fields{
		"width":  a.layout.Width,
		"height": a.layout.Height,
		"scale":  a.cfg.Scale,
	}).Info("Starting window")
	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("run game loop: %w", err)
	}
	return nil
}

func (a *App) measureUI(s string) int { return measure(a.fonts.regular, s) }

// repeating reports a key press on the first frame and then at the OS-like
// repeat rate while the key is held.
func repeating(key ebiten.Key) bool {
	const delay, interval = 30, 4
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= delay && (d-delay)%interval == 0)
}

func (a *App) Update() error {
	a.frameTick++
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)

	if a.state.Modal() {
		a.menu.Close()
		a.dialogView = ui.LayoutDialog(a.state.Dialog, a.layout, a.theme, a.measureUI)
		a.updateDialog(ctrl, shift)
		return nil
	}

	a.menu.Layout(a.layout, a.theme, a.measureUI)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && a.menu.IsOpen() {
		a.menu.Close()
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		a.invoke(editor.ActionAbout)
		return nil
	}
	if ctrl {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyD):
			a.invoke(editor.ActionDrawObject)
		case inpututil.IsKeyJustPressed(ebiten.KeyM):
			a.invoke(editor.ActionGenerateMosaic)
		case inpututil.IsKeyJustPressed(ebiten.KeyL):
			a.invoke(editor.ActionClearCanvas)
		case shift && inpututil.IsKeyJustPressed(ebiten.KeyC):
			a.invoke(editor.ActionCopyCanvas)
		}
		return nil
	}

	x, y := ebiten.CursorPosition()
	a.menu.Hover(x, y)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.menu.Layout(a.layout, a.theme, a.measureUI)
		if id, ok := a.menu.Click(x, y); ok {
			a.invoke(id)
		}
	}
	return nil
}

func (a *App) invoke(id editor.ActionID) {
	a.menu.Close()
	a.state.Invoke(id)
}

func (a *App) updateDialog(ctrl, shift bool) {
	d := a.state.Dialog

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		a.state.CancelDialog()
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyKPEnter):
		a.state.ConfirmDialog()
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		if shift {
			d.FocusPrev()
		} else {
			d.FocusNext()
		}
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyV):
		a.state.PasteIntoDialog()
	case repeating(ebiten.KeyBackspace):
		d.Backspace()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		d.Cycle(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		d.Cycle(1)
	}

	if !ctrl {
		for _, r := range ebiten.AppendInputChars(nil) {
			f := d.Focused()
			if f != nil && f.Kind == form.KindMultiChoice {
				if r >= '1' && r <= '9' {
					d.Toggle(d.Focus(), int(r-'1'))
				}
				continue
			}
			d.InsertText(string(r))
		}
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	hit := a.dialogView.HitTest(ebiten.CursorPosition())
	switch hit.Kind {
	case ui.HitConfirm:
		a.state.ConfirmDialog()
	case ui.HitCancel:
		a.state.CancelDialog()
	case ui.HitField:
		d.SetFocus(hit.Field)
	case ui.HitOption:
		if d.Fields[hit.Field].Kind == form.KindMultiChoice {
			d.Toggle(hit.Field, hit.Option)
		} else {
			d.Select(hit.Field, hit.Option)
		}
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	if a.shellImg == nil {
		a.shellImg = ebiten.NewImage(a.layout.Width, a.layout.Height)
		a.dialogImg = ebiten.NewImage(a.layout.Width, a.layout.Height)
		a.canvasImg = ebiten.NewImage(canvas.Width, canvas.Height)
	}

	if a.state.TakeRedraw() {
		a.canvasImg.WritePixels(a.state.Surface.Pixels())
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(a.layout.Canvas.X), float64(a.layout.Canvas.Y))
	screen.DrawImage(a.canvasImg, op)

	mx, my := ebiten.CursorPosition()
	modal := a.state.Modal()
	if modal {
		mx, my = -1, -1
	}
	labels := ui.DrawShell(a.shellFB, a.layout, a.theme, a.state.Status)
	a.menu.Layout(a.layout, a.theme, a.measureUI)
	labels = append(labels, a.menu.Draw(a.shellFB, a.theme, mx, my)...)
	a.shellImg.WritePixels(a.shellFB.Pixels)
	screen.DrawImage(a.shellImg, nil)
	a.drawLabels(screen, labels)

	if !modal {
		return
	}
	a.dialogFB.Clear(color.RGBA{})
	a.dialogView = ui.LayoutDialog(a.state.Dialog, a.layout, a.theme, a.measureUI)
	caretOn := (a.frameTick/30)%2 == 0
	labels = ui.DrawDialog(a.dialogFB, a.dialogView, a.state.Dialog, a.theme, caretOn, a.measureUI)
	a.dialogImg.WritePixels(a.dialogFB.Pixels)
	screen.DrawImage(a.dialogImg, nil)
	a.drawLabels(screen, labels)
}

func (a *App) drawLabels(screen *ebiten.Image, labels []ui.Label) {
	for _, l := range labels {
		if l.Text == "" {
			continue
		}
		face := a.fonts.face(l.Bold)
		tw := measure(face, l.Text)
		ascent := face.Metrics().Ascent.Round()
		descent := face.Metrics().Descent.Round()
		x := l.Box.X
		switch l.Align {
		case ui.AlignCenter:
			x += (l.Box.W - tw) / 2
		case ui.AlignRight:
			x += l.Box.W - tw
		}
		baseline := l.Box.Y + (l.Box.H+ascent+descent)/2 - descent
		text.Draw(screen, l.Text, face, x, baseline, l.Color)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return a.layout.Width, a.layout.Height
}
