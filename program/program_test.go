package program

import (
	"testing"

	"github.com/bdwalton/piet/coord"
	"github.com/bdwalton/piet/raster"
)

func testProgram() *Program {
	red := raster.Colored(0, 1)
	green := raster.Colored(2, 1)
	g := raster.NewGrid([][]raster.Color{
		{red, red, green},
		{red, green, green},
	})
	return FromGrid(g)
}

func TestProgramColorAndRegionAt(t *testing.T) {
	p := testProgram()

	if p.Rows() != 2 || p.Cols() != 3 {
		t.Fatalf("Rows/Cols = %d/%d, want 2/3", p.Rows(), p.Cols())
	}

	origin := coord.Point{Row: 0, Col: 0}
	if p.ColorAt(origin) != raster.Colored(0, 1) {
		t.Errorf("ColorAt(origin) = %s, want %s", p.ColorAt(origin), raster.Colored(0, 1))
	}

	r1 := p.RegionAt(coord.Point{Row: 0, Col: 0})
	r2 := p.RegionAt(coord.Point{Row: 1, Col: 0})
	if r1 != r2 {
		t.Error("(0,0) and (1,0) should share a region")
	}
	r3 := p.RegionAt(coord.Point{Row: 0, Col: 2})
	if r1 == r3 {
		t.Error("(0,0) and (0,2) should be in different regions")
	}
}

func TestProgramRegionsDiscoveryOrder(t *testing.T) {
	p := testProgram()
	regions := p.Regions()
	if len(regions) != 2 {
		t.Fatalf("len(Regions()) = %d, want 2", len(regions))
	}
	if regions[0].Color != raster.Colored(0, 1) {
		t.Errorf("Regions()[0].Color = %s, want red (first discovered, row-major)", regions[0].Color)
	}
}

func TestProgramStep(t *testing.T) {
	p := testProgram()

	next, ok := p.Step(coord.Point{Row: 0, Col: 1}, coord.Right)
	if !ok || next != (coord.Point{Row: 0, Col: 2}) {
		t.Errorf("Step right from (0,1) = %+v, %v, want (0,2), true", next, ok)
	}

	_, ok = p.Step(coord.Point{Row: 0, Col: 0}, coord.Up)
	if ok {
		t.Error("Step up from top row should be out of bounds")
	}

	_, ok = p.Step(coord.Point{Row: 0, Col: 2}, coord.Right)
	if ok {
		t.Error("Step right from last column should be out of bounds")
	}
}
