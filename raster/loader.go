package raster

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/png"
	"os"

	// qoi registers the "qoi" format with the standard image package on
	// import, the same way image/png and image/gif do, giving the loader
	// a third lossless decoder without hand-rolling one.
	_ "github.com/xfmoulet/qoi"
)

// Load opens path, decodes it with whatever format is registered for its
// contents, and classifies every pixel into a Grid. One source pixel is
// one codel; callers with multi-pixel-per-codel sources must downsample
// before calling Load (see SPEC_FULL.md §4.7/§9).
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open image %q: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("couldn't decode image %q: %w", path, err)
	}

	bounds := img.Bounds()
	rows, cols := bounds.Dy(), bounds.Dx()
	cells := make([][]Color, rows)
	for row := 0; row < rows; row++ {
		cells[row] = make([]Color, cols)
		for col := 0; col < cols; col++ {
			c, err := Classify(img.At(bounds.Min.X+col, bounds.Min.Y+row))
			if err != nil {
				return nil, fmt.Errorf("%s (decoded as %s) at row %d, col %d: %w", path, format, row, col, err)
			}
			cells[row][col] = c
		}
	}

	return NewGrid(cells), nil
}
