package editor

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"drawpad/internal/form"
	"drawpad/internal/platform"
	"drawpad/pkg/canvas"
)

// ActionID names a menu item or shortcut. Every user command goes through
// State.Invoke keyed by one of these.
type ActionID string

const (
	ActionDrawObject     ActionID = "draw_object"
	ActionGenerateMosaic ActionID = "generate_mosaic"
	ActionClearCanvas    ActionID = "clear_canvas"
	ActionCopyCanvas     ActionID = "copy_canvas"
	ActionAbout          ActionID = "about"
)

const aboutText = "Drawing App\n\nDraw > Draw Object paints a centered rectangle.\nMosaic > Generate Mosaic fills the canvas with random blocks."

// State owns the canvas and the modal dialog currently shown over it.
type State struct {
	Surface *canvas.Surface
	Dialog  *form.Dialog
	Status  string

	sys   platform.Services
	dirty bool
}

func NewState(surface *canvas.Surface, sys platform.Services) *State {
	if surface == nil {
		surface = canvas.New()
	}
	s := &State{Surface: surface, Status: "Ready", sys: sys, dirty: true}
	surface.SetRedrawHandler(s.markDirty)
	return s
}

func (s *State) markDirty() { s.dirty = true }

// TakeRedraw reports whether the canvas changed since the last call.
func (s *State) TakeRedraw() bool {
	d := s.dirty
	s.dirty = false
	return d
}

// Modal reports whether a dialog is blocking the main window.
func (s *State) Modal() bool {
	return s.Dialog != nil && s.Dialog.Open()
}

// Invoke runs the command for id. Commands are ignored while a dialog is
// open; it returns whether the command ran.
func (s *State) Invoke(id ActionID) bool {
	if s.Modal() {
		return false
	}
	log := logrus.WithField("action", string(id))
	switch id {
	case ActionDrawObject:
		s.Dialog = form.NewDrawObjectDialog(s.drawObject)
	case ActionGenerateMosaic:
		s.Dialog = form.NewMosaicDialog(s.generateMosaic)
	case ActionClearCanvas:
		if s.sys != nil && !s.sys.Dialogs().Confirm("Clear Canvas", "Clear the whole canvas?") {
			s.Status = "Clear cancelled"
			return true
		}
		s.Surface.Clear()
		s.Status = "Canvas cleared"
	case ActionCopyCanvas:
		s.copyCanvas(log)
	case ActionAbout:
		if s.sys != nil {
			s.sys.Dialogs().Info("About", aboutText)
		}
	default:
		log.Warn("Unknown action")
		return false
	}
	log.Debug("Action invoked")
	return true
}

func (s *State) drawObject(p canvas.DrawObjectParams) error {
	s.Surface.DrawObject(p.Width, p.Height, p.Color)
	s.Status = fmt.Sprintf("Drew %dx%d %s object", p.Width, p.Height, p.Color)
	logrus.WithFields(logrus.Fields{
		"width":  p.Width,
		"height": p.Height,
		"color":  p.Color.String(),
	}).Info("Drew object")
	return nil
}

func (s *State) generateMosaic(p canvas.MosaicParams) error {
	if err := s.Surface.GenerateMosaic(p.Width, p.Height, p.BlockSize, p.Colors); err != nil {
		return err
	}
	s.Status = fmt.Sprintf("Generated %dx%d mosaic (%d colors)", p.BlockSize, p.BlockSize, len(p.Colors))
	logrus.WithFields(logrus.Fields{
		"width":      p.Width,
		"height":     p.Height,
		"block_size": p.BlockSize,
		"colors":     canvas.ColorNames(p.Colors),
	}).Info("Generated mosaic")
	return nil
}

func (s *State) copyCanvas(log *logrus.Entry) {
	if s.sys == nil {
		s.Status = "Clipboard unavailable"
		return
	}
	if err := s.sys.Clipboard().WriteImage(s.Surface.Image()); err != nil {
		log.WithError(err).Warn("Copy canvas failed")
		s.Status = "Copy failed: " + err.Error()
		s.sys.Dialogs().Error("Copy to Clipboard", "Could not copy the canvas:\n"+err.Error())
		return
	}
	s.Status = "Canvas copied to clipboard"
}

// ConfirmDialog validates and applies the open dialog. Validation errors
// stay on the dialog; it only closes on success.
func (s *State) ConfirmDialog() bool {
	if !s.Modal() {
		return false
	}
	if !s.Dialog.Confirm() {
		logrus.WithFields(logrus.Fields{
			"dialog": s.Dialog.Title,
			"error":  s.Dialog.Err(),
		}).Debug("Dialog input rejected")
		return false
	}
	s.Dialog = nil
	return true
}

func (s *State) CancelDialog() {
	if s.Dialog == nil {
		return
	}
	s.Dialog.Cancel()
	s.Dialog = nil
	s.Status = "Cancelled"
}

// PasteIntoDialog inserts clipboard text into the focused field.
func (s *State) PasteIntoDialog() {
	if !s.Modal() || s.sys == nil {
		return
	}
	text, err := s.sys.Clipboard().ReadText()
	if err != nil {
		logrus.WithError(err).Warn("Clipboard paste failed")
		s.Status = "Paste failed: " + err.Error()
		return
	}
	s.Dialog.InsertText(text)
}
