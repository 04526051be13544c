package portfolio

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
)

// maxAvatarWidth is twice the 12rem display size, for high-density screens.
const maxAvatarWidth = 384

// ProcessAvatar decodes a PNG, JPEG or GIF profile photo, scales it down to
// maxAvatarWidth if wider, and encodes it as PNG.
func ProcessAvatar(src io.Reader) ([]byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxAvatarWidth {
		newH := h * maxAvatarWidth / w
		if newH < 1 {
			newH = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, maxAvatarWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// loadAvatar processes the configured photo once at startup. A missing or
// unreadable photo is logged and /photo4.png answers 404.
func (a *App) loadAvatar() []byte {
	f, err := os.Open(a.Config.Photo)
	if err != nil {
		a.Logger.Warn("profile photo unavailable", zap.String("path", a.Config.Photo), zap.Error(err))
		return nil
	}
	defer f.Close()
	b, err := ProcessAvatar(f)
	if err != nil {
		a.Logger.Warn("profile photo could not be processed", zap.String("path", a.Config.Photo), zap.Error(err))
		return nil
	}
	return b
}

func (a *App) handleAvatar(c echo.Context) error {
	if a.avatar == nil {
		return echo.ErrNotFound
	}
	return c.Blob(http.StatusOK, "image/png", a.avatar)
}
