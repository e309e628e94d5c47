package tui

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/vovakirdan/flouhou/internal/canvas"
)

// SaveScreenshot writes the bitmap as a PNG into dir and returns the file path.
func SaveScreenshot(dir string, b *canvas.Bitmap, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: create directory: %w", err)
	}

	name := fmt.Sprintf("flouhou_%s.png", now.Format("20060102_150405"))
	path := filepath.Join(dir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return "", fmt.Errorf("screenshot: create file: %w", err)
	}
	if err := png.Encode(f, b); err != nil {
		f.Close()
		return "", fmt.Errorf("screenshot: encode: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("screenshot: close: %w", err)
	}
	return path, nil
}
