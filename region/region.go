// Package region groups adjacent same-colored codels into connected
// regions and answers the directional "farthest in-block cell" queries
// the stepping engine needs to find a block's exit codel.
package region

import (
	"github.com/bdwalton/piet/coord"
	"github.com/bdwalton/piet/raster"
)

// Region is a maximal 4-connected set of same-colored codels. It is
// built once during load and never mutated afterward; every Point
// belonging to it shares the same *Region value, the way every codel in
// a gintendo cartridge bank shares the same baseMapper instance.
type Region struct {
	Color   raster.Color
	Members []coord.Point
	Size    int

	// rowExtent[row] = {minCol, maxCol} among members in that row.
	// colExtent[col] = {minRow, maxRow} among members in that column.
	rowExtent map[int][2]int
	colExtent map[int][2]int
}

func newRegion(color raster.Color, members []coord.Point) *Region {
	r := &Region{
		Color:     color,
		Members:   members,
		Size:      len(members),
		rowExtent: make(map[int][2]int),
		colExtent: make(map[int][2]int),
	}

	for _, p := range members {
		if ext, ok := r.rowExtent[p.Row]; ok {
			if p.Col < ext[0] {
				ext[0] = p.Col
			}
			if p.Col > ext[1] {
				ext[1] = p.Col
			}
			r.rowExtent[p.Row] = ext
		} else {
			r.rowExtent[p.Row] = [2]int{p.Col, p.Col}
		}

		if ext, ok := r.colExtent[p.Col]; ok {
			if p.Row < ext[0] {
				ext[0] = p.Row
			}
			if p.Row > ext[1] {
				ext[1] = p.Row
			}
			r.colExtent[p.Col] = ext
		} else {
			r.colExtent[p.Col] = [2]int{p.Row, p.Row}
		}
	}

	return r
}

// Edge returns the farthest in-region cell along the axis of d, starting
// from "from" (which must be a member of r). This is a lookup in the
// extent tables built at construction time, always defined because
// "from" is itself a member.
func (r *Region) Edge(from coord.Point, d coord.Direction) coord.Point {
	switch d {
	case coord.Up:
		return coord.Point{Row: r.colExtent[from.Col][0], Col: from.Col}
	case coord.Down:
		return coord.Point{Row: r.colExtent[from.Col][1], Col: from.Col}
	case coord.Left:
		return coord.Point{Row: from.Row, Col: r.rowExtent[from.Row][0]}
	default: // coord.Right
		return coord.Point{Row: from.Row, Col: r.rowExtent[from.Row][1]}
	}
}
