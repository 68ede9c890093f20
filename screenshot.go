package lview

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

const defaultScreenshotDir = "screenshots"

// Screenshot asks for the next drawn frame to be saved as
// ScreenshotDir/<timestamp>_<label>.png. Several labels queued for the same
// frame each get their own file.
func (e *Engine) Screenshot(label string) {
	e.screenshotQueue = append(e.screenshotQueue, label)
}

// flushScreenshots saves screen once per queued label and empties the
// queue. Errors are logged and never reach Draw.
func (e *Engine) flushScreenshots(screen *ebiten.Image) {
	if len(e.screenshotQueue) == 0 {
		return
	}
	labels := e.screenshotQueue
	e.screenshotQueue = e.screenshotQueue[:0]

	log := logger.WithField("dir", e.ScreenshotDir)
	if err := os.MkdirAll(e.ScreenshotDir, 0o755); err != nil {
		log.WithError(err).Warn("screenshot: create directory")
		return
	}

	img := captureFrame(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range labels {
		path := screenshotPath(e.ScreenshotDir, stamp, label)
		if err := writePNG(path, img); err != nil {
			log.WithError(err).WithFields(logrus.Fields{"label": label, "path": path}).Warn("screenshot: write")
			continue
		}
		log.WithField("path", path).Debug("screenshot saved")
	}
}

// captureFrame copies the screen's pixels into a straight-alpha image.
func captureFrame(screen *ebiten.Image) *image.NRGBA {
	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)
	return unpremultiply(pixels, b.Dx(), b.Dy())
}

// unpremultiply turns ebiten's premultiplied RGBA bytes into an NRGBA
// image of size w x h.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, pixels)
	for px := img.Pix; len(px) >= 4; px = px[4:] {
		a := int(px[3])
		if a == 0 || a == 255 {
			continue
		}
		for c := 0; c < 3; c++ {
			px[c] = uint8(min(int(px[c])*255/a, 255))
		}
	}
	return img
}

func screenshotPath(dir, stamp, label string) string {
	return filepath.Join(dir, stamp+"_"+sanitizeLabel(label)+".png")
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps ASCII letters, digits, '-' and '.', and turns every
// other rune into '_'. A blank label becomes "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
