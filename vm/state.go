// Package vm implements the Piet interpreter state machine: the mutable
// execution state, the hue/lightness command dispatch table, and the
// stepping engine that drives the direction pointer and codel chooser
// across a program.
package vm

import (
	"github.com/bdwalton/piet/coord"
)

// maxTerminationCount is the number of consecutive failed advances that
// halts the program.
const maxTerminationCount = 8

// State is the interpreter's mutable execution state. It holds a
// read-only reference to the Program it's walking (via Machine) and owns
// everything else: pointer, direction, chooser, stack, stall counter,
// and the pending input buffer. Grounded on mos6502's cpu struct — a
// flat bag of registers alongside shared, externally-owned memory.
type State struct {
	Pointer    coord.Point
	Direction  coord.Direction
	Chooser    coord.Chooser
	Stack      []int64
	stallCount int
	Input      *InputBuffer
	Out        Sink
}

// NewState returns a fresh State at the program's origin, facing Right
// with the chooser set to Left, per SPEC_FULL.md §3/§4.5.
func NewState(input *InputBuffer, out Sink) *State {
	return &State{
		Pointer:   coord.Point{Row: 0, Col: 0},
		Direction: coord.Right,
		Chooser:   coord.ChooserLeft,
		Input:     input,
		Out:       out,
	}
}

// Halted reports whether the stall counter has reached the termination
// threshold.
func (s *State) Halted() bool {
	return s.stallCount >= maxTerminationCount
}

// resetStalls clears the stall counter after a successful advance.
func (s *State) resetStalls() {
	s.stallCount = 0
}

// recordStall applies the retry rotation pattern for failure k (the
// value of the stall counter before this call) and increments it:
// even k toggles the chooser, odd k rotates the direction clockwise.
// This is the rule SPEC_FULL.md §9 fixes between the two disagreeing
// source versions.
func (s *State) recordStall() {
	if s.stallCount%2 == 0 {
		s.Chooser = s.Chooser.Next()
	} else {
		s.Direction = s.Direction.Next()
	}
	s.stallCount++
}
