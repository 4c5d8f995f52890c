package assets

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/HugoSmits86/nativewebp"
)

// EncodeWebP writes img as lossless WebP.
func EncodeWebP(w io.Writer, img image.Image) error {
	if img.Bounds().Empty() {
		return ErrEmptyImage
	}
	if err := nativewebp.Encode(w, img, nil); err != nil {
		return fmt.Errorf("assets: webp encode: %w", err)
	}
	return nil
}

// SaveScreenshot writes img to dir as shot-<timestamp>.webp and returns the
// path.
func SaveScreenshot(dir string, img image.Image, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("assets: screenshot dir: %w", err)
	}
	path := filepath.Join(dir, at.Format("shot-20060102-150405.000")+".webp")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("assets: screenshot: %w", err)
	}
	if err := EncodeWebP(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("assets: screenshot: %w", err)
	}
	return path, nil
}
