package graphics

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestDecodeImageConvertsToRGBA(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paletted.png")
	pal := image.NewPaletted(image.Rect(0, 0, 4, 3), color.Palette{
		color.RGBA{0, 0, 0, 0},
		color.RGBA{0, 255, 0, 255},
	})
	pal.SetColorIndex(1, 1, 1)

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, pal); err != nil {
		t.Fatal(err)
	}
	f.Close()

	rgba, err := DecodeImage(path)
	if err != nil {
		t.Fatalf("DecodeImage: %v", err)
	}
	if got := rgba.Rect.Size(); got != (image.Point{4, 3}) {
		t.Errorf("expected 4x3, got %v", got)
	}
	if rgba.Stride != 4*4 {
		t.Errorf("expected tightly packed rows, got stride %d", rgba.Stride)
	}
	if c := rgba.RGBAAt(1, 1); c.G != 255 || c.A != 255 {
		t.Errorf("expected opaque green at (1,1), got %v", c)
	}
}

func TestDecodeImageRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-an-image.png")
	if err := os.WriteFile(path, []byte("definitely not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeImage(path); err == nil {
		t.Error("expected decode error")
	}
}
