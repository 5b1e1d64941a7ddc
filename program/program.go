// Package program assembles the immutable, block-structured Piet
// program: a grid of points, each carrying its color and a reference to
// the region it belongs to, plus the pure-geometry Step helper.
package program

import (
	"github.com/bdwalton/piet/coord"
	"github.com/bdwalton/piet/raster"
	"github.com/bdwalton/piet/region"
)

// Program is the fully loaded, immutable artifact the interpreter runs
// against: a grid of colors and a parallel grid of region references.
// Grounded on nesrom.ROM's thin, bounds-checked accessor methods over a
// value assembled once at load time.
type Program struct {
	grid    *raster.Grid
	owner   [][]*region.Region
	regions []*region.Region
	rows    int
	cols    int
}

// Load builds a Program from a decoded image file.
func Load(path string) (*Program, error) {
	g, err := raster.Load(path)
	if err != nil {
		return nil, err
	}
	return FromGrid(g), nil
}

// FromGrid builds a Program directly from a classified Grid, skipping
// image decoding. Used by tests that construct small synthetic
// programs by hand.
func FromGrid(g *raster.Grid) *Program {
	regions, owner := region.Build(g)
	return &Program{grid: g, owner: owner, regions: regions, rows: g.Rows(), cols: g.Cols()}
}

// Rows returns the number of rows in the program.
func (p *Program) Rows() int { return p.rows }

// Cols returns the number of columns in the program.
func (p *Program) Cols() int { return p.cols }

// ColorAt returns the classified color at pt.
func (p *Program) ColorAt(pt coord.Point) raster.Color {
	return p.grid.At(pt.Row, pt.Col)
}

// RegionAt returns the region pt belongs to.
func (p *Program) RegionAt(pt coord.Point) *region.Region {
	return p.owner[pt.Row][pt.Col]
}

// Regions returns every region in the program, in discovery order.
func (p *Program) Regions() []*region.Region {
	return p.regions
}

// Step returns the neighbour of p in direction d and whether it is
// in-bounds. Step is pure geometry: it does not consult colors or
// regions.
func (p *Program) Step(pt coord.Point, d coord.Direction) (coord.Point, bool) {
	n := pt.Add(d)
	if n.Row < 0 || n.Row >= p.rows || n.Col < 0 || n.Col >= p.cols {
		return coord.Point{}, false
	}
	return n, true
}
