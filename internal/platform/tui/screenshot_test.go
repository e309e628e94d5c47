package tui

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/flouhou/internal/canvas"
)

func TestSaveScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	b := canvas.NewBitmap()
	b.DrawBox(10, 10, 2, 2)

	at := time.Date(2024, 3, 9, 14, 5, 6, 0, time.Local)
	path, err := SaveScreenshot(dir, b, at)
	if err != nil {
		t.Fatalf("SaveScreenshot() error = %v", err)
	}
	if filepath.Base(path) != "flouhou_20240309_140506.png" {
		t.Errorf("file name = %q", filepath.Base(path))
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open screenshot: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode screenshot: %v", err)
	}
	if got := img.Bounds(); got.Dx() != canvas.Width || got.Dy() != canvas.Height {
		t.Fatalf("bounds = %v, want %dx%d", got, canvas.Width, canvas.Height)
	}

	ink, _, _, _ := img.At(10, 10).RGBA()
	paper, _, _, _ := img.At(0, 0).RGBA()
	if ink != 0 {
		t.Errorf("inked pixel = %d, want black", ink)
	}
	if paper != 0xffff {
		t.Errorf("blank pixel = %d, want white", paper)
	}
}
