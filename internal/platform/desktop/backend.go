package desktop

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"sync"

	textclip "github.com/atotto/clipboard"
	"github.com/sirupsen/logrus"
	"github.com/sqweek/dialog"
	imageclip "golang.design/x/clipboard"

	"drawpad/internal/platform"
)

var ErrImageClipboardUnavailable = errors.New("desktop: image clipboard unavailable")

type Backend struct {
	clip *clipboard
}

func New() *Backend { return &Backend{clip: &clipboard{}} }

func (b *Backend) Name() string                  { return "desktop" }
func (b *Backend) Dialogs() platform.Dialogs     { return messageBoxes{} }
func (b *Backend) Clipboard() platform.Clipboard { return b.clip }

type messageBoxes struct{}

func (messageBoxes) Info(title, msg string) {
	dialog.Message("%s", msg).Title(title).Info()
}

func (messageBoxes) Error(title, msg string) {
	dialog.Message("%s", msg).Title(title).Error()
}

func (messageBoxes) Confirm(title, msg string) bool {
	return dialog.Message("%s", msg).Title(title).YesNo()
}

// clipboard reads text through the system tools atotto/clipboard shells out
// to, and writes images through golang.design/x/clipboard, which needs a
// one-time native initialisation.
type clipboard struct {
	once    sync.Once
	initErr error
}

func (c *clipboard) ReadText() (string, error) {
	return textclip.ReadAll()
}

func (c *clipboard) WriteImage(img image.Image) error {
	c.once.Do(func() {
		if err := imageclip.Init(); err != nil {
			c.initErr = fmt.Errorf("%w: %v", ErrImageClipboardUnavailable, err)
			logrus.WithError(err).Warn("Image clipboard init failed")
		}
	})
	if c.initErr != nil {
		return c.initErr
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode canvas png: %w", err)
	}
	imageclip.Write(imageclip.FmtImage, buf.Bytes())
	return nil
}
