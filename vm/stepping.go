package vm

import (
	"github.com/bdwalton/piet/coord"
	"github.com/bdwalton/piet/program"
)

// Machine pairs a State with the Program it walks. Grounded on
// mos6502's cpu struct holding a *memory pointer: the state owns
// everything mutable, the Program is shared, read-only, and outlives
// any single run.
type Machine struct {
	Program *program.Program
	State   *State
}

// NewMachine returns a Machine ready to run p from its initial state.
func NewMachine(p *program.Program, input *InputBuffer, out Sink) *Machine {
	return &Machine{Program: p, State: NewState(input, out)}
}

// Run steps the machine until it halts (8 consecutive failed
// advances). Grounded on mos6502's step()/Run() pair, with the
// teacher's time.Ticker-paced, context-cancellable loop dropped:
// SPEC_FULL.md §5 specifies a synchronous engine with no timers or
// suspension points, so Run is a plain loop instead.
func (m *Machine) Run() {
	for !m.State.Halted() {
		m.Step()
	}
}

// Step performs one advance attempt: find the exit codel of the
// current block, try to cross the block edge in the DP's direction,
// and either move (dispatching the appropriate command and resetting
// the stall counter) or apply the retry rotation pattern.
func (m *Machine) Step() {
	s := m.State
	p := m.Program

	cur := s.Pointer
	curColor := p.ColorAt(cur)
	curRegion := p.RegionAt(cur)

	exit := exitCodel(p, cur, s.Direction, s.Chooser)

	next, passedWhite, ok := advance(p, exit, s.Direction)
	if !ok {
		s.recordStall()
		return
	}

	if passedWhite || curColor.IsWhite() {
		dispatch(s, 0, 0, 0)
	} else {
		nextColor := p.ColorAt(next)
		hueDelta := cyclicDelta(curColor.Hue, nextColor.Hue, 6)
		lightDelta := cyclicDelta(curColor.Lightness, nextColor.Lightness, 3)
		dispatch(s, hueDelta, lightDelta, int64(curRegion.Size))
	}

	s.Pointer = next
	s.resetStalls()
}

// exitCodel finds the codel the pointer will attempt to leave the
// current block from: the farthest cell in direction d, then the
// farthest cell of that same block in the chooser-rotated direction.
func exitCodel(p *program.Program, from coord.Point, d coord.Direction, c coord.Chooser) coord.Point {
	r := p.RegionAt(from)
	e1 := r.Edge(from, d)
	e2 := r.Edge(e1, c.Choose(d))
	return e2
}

// advance attempts to cross the block edge at exit in direction d. It
// reports the new pointer position, whether a white slide was
// performed, and whether the advance succeeded at all (false means
// blocked: out of bounds or black).
func advance(p *program.Program, exit coord.Point, d coord.Direction) (coord.Point, bool, bool) {
	target, inBounds := p.Step(exit, d)
	if !inBounds {
		return coord.Point{}, false, false
	}

	color := p.ColorAt(target)
	if color.IsBlack() {
		return coord.Point{}, false, false
	}

	if color.IsWhite() {
		return slide(p, target, d)
	}

	return target, false, true
}

// slide performs the straight-line walk across a white region: step
// one cell at a time in direction d while staying white, stop at the
// last white cell, then try once more to leave it. This is the
// "minimum testable behavior" straight-slide variant SPEC_FULL.md §9
// documents — it does not attempt the fuller retry-within-white BFS
// the Piet reference spec describes as an extension.
func slide(p *program.Program, start coord.Point, d coord.Direction) (coord.Point, bool, bool) {
	whiteEdge := start
	for {
		next, inBounds := p.Step(whiteEdge, d)
		if !inBounds || !p.ColorAt(next).IsWhite() {
			break
		}
		whiteEdge = next
	}

	next, inBounds := p.Step(whiteEdge, d)
	if !inBounds {
		return whiteEdge, true, true
	}
	if p.ColorAt(next).IsBlack() {
		return whiteEdge, true, true
	}

	// Colored, or (by construction) further white: either way we enter
	// it; further white shouldn't occur here since the preceding loop
	// already walked to the last white cell along this straight line.
	return next, true, true
}
