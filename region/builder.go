package region

import (
	"github.com/bdwalton/piet/coord"
	"github.com/bdwalton/piet/raster"
)

// Build scans g in row-major order and, for every unvisited cell, runs
// an iterative flood fill (explicit work list, no recursion) collecting
// its full 4-connected same-color component. It returns every region
// discovered, in discovery order, and a parallel grid mapping every
// point to the *Region it belongs to.
//
// Grounded on the original implementation's get_regions/get_region: an
// explicit "seen" set plus an explicit work list, scanned row-major.
func Build(g *raster.Grid) ([]*Region, [][]*Region) {
	rows, cols := g.Rows(), g.Cols()

	seen := make([][]bool, rows)
	owner := make([][]*Region, rows)
	for r := 0; r < rows; r++ {
		seen[r] = make([]bool, cols)
		owner[r] = make([]*Region, cols)
	}

	var regions []*Region

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if seen[row][col] {
				continue
			}

			color := g.At(row, col)
			members := floodFill(g, seen, row, col, color)
			r := newRegion(color, members)
			regions = append(regions, r)

			for _, p := range members {
				owner[p.Row][p.Col] = r
			}
		}
	}

	return regions, owner
}

// floodFill collects the full 4-connected component of color starting
// at (startRow, startCol), marking every visited cell in seen as it
// goes, and returns its members.
func floodFill(g *raster.Grid, seen [][]bool, startRow, startCol int, color raster.Color) []coord.Point {
	start := coord.Point{Row: startRow, Col: startCol}
	seen[startRow][startCol] = true

	work := []coord.Point{start}
	var members []coord.Point

	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]
		members = append(members, p)

		for _, d := range [4]coord.Direction{coord.Up, coord.Right, coord.Down, coord.Left} {
			n := p.Add(d)
			if !g.InBounds(n.Row, n.Col) || seen[n.Row][n.Col] {
				continue
			}
			if g.At(n.Row, n.Col) != color {
				continue
			}
			seen[n.Row][n.Col] = true
			work = append(work, n)
		}
	}

	return members
}
