package raster

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPNGRoundTrip(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF}) // Colored(0,1)
	img.Set(1, 0, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}) // White
	img.Set(0, 1, color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}) // Black
	img.Set(1, 1, color.NRGBA{R: 0x00, G: 0xFF, B: 0x00, A: 0xFF}) // Colored(2,1)

	dir := t.TempDir()
	path := filepath.Join(dir, "prog.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("couldn't create temp file: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("couldn't encode PNG: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("couldn't close temp file: %v", err)
	}

	g, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) returned error: %v", path, err)
	}

	if g.Rows() != 2 || g.Cols() != 2 {
		t.Fatalf("Rows/Cols = %d/%d, want 2/2", g.Rows(), g.Cols())
	}
	if g.At(0, 0) != Colored(0, 1) {
		t.Errorf("At(0,0) = %s, want %s", g.At(0, 0), Colored(0, 1))
	}
	if g.At(1, 0) != White {
		t.Errorf("At(1,0) = %s, want White", g.At(1, 0))
	}
	if g.At(0, 1) != Black {
		t.Errorf("At(0,1) = %s, want Black", g.At(0, 1))
	}
	if g.At(1, 1) != Colored(2, 1) {
		t.Errorf("At(1,1) = %s, want %s", g.At(1, 1), Colored(2, 1))
	}
}

func TestLoadRejectsUnsupportedColor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF})

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("couldn't create temp file: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("couldn't encode PNG: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("couldn't close temp file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load() of an image with an off-palette pixel succeeded, want error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Fatal("Load() of a missing file succeeded, want error")
	}
}
