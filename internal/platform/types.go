// Package platform describes the desktop services the app needs beyond its
// own window: native message boxes and the system clipboard.
package platform

import "image"

type Services interface {
	Name() string
	Dialogs() Dialogs
	Clipboard() Clipboard
}

// Dialogs are native, blocking message boxes.
type Dialogs interface {
	Info(title, msg string)
	Error(title, msg string)
	Confirm(title, msg string) bool
}

type Clipboard interface {
	ReadText() (string, error)
	WriteImage(img image.Image) error
}
