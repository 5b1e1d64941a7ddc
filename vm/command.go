package vm

import (
	"fmt"
)

// delta is the (Δhue, Δlightness) key into the command table, computed
// by the stepping engine with unsigned cyclic subtraction.
type delta struct {
	hue, lightness uint8
}

// command is one of the 17 stack operations (or nop), keyed by its
// (Δhue, Δlightness) table position. Every command is atomic: if its
// precondition fails, state is left untouched. pushValue carries the
// size of the block the pointer is leaving, supplied by the stepping
// engine — the command table never infers it.
type command func(s *State, pushValue int64)

// commands is the 6x3 dispatch table from SPEC_FULL.md §4.9, a direct
// generalization of mos6502/opcodes.go's map[uint8]opcode table-dispatch
// idiom to a two-element cyclic-delta key.
var commands = map[delta]command{
	{0, 0}: cmdNop,
	{0, 1}: cmdPush,
	{0, 2}: cmdPop,

	{1, 0}: cmdAdd,
	{1, 1}: cmdSubtract,
	{1, 2}: cmdMultiply,

	{2, 0}: cmdDivide,
	{2, 1}: cmdModulo,
	{2, 2}: cmdNot,

	{3, 0}: cmdGreater,
	{3, 1}: cmdPointer,
	{3, 2}: cmdSwitch,

	{4, 0}: cmdDuplicate,
	{4, 1}: cmdRoll,
	{4, 2}: cmdInNumber,

	{5, 0}: cmdInChar,
	{5, 1}: cmdOutNumber,
	{5, 2}: cmdOutChar,
}

// cyclicDelta computes (next - current) mod cycle with unsigned cyclic
// subtraction, per SPEC_FULL.md §4.4.
func cyclicDelta(current, next, cycle uint8) uint8 {
	return uint8((int(next) - int(current) + int(cycle)) % int(cycle))
}

// dispatch looks up and runs the command for (hueDelta, lightDelta),
// supplying pushValue as push's operand. It panics only if the table is
// missing an entry, which would be a programming error (all 18 cells of
// the 6x3 grid are populated above), not a runtime condition a Piet
// program can trigger.
func dispatch(s *State, hueDelta, lightDelta uint8, pushValue int64) {
	cmd, ok := commands[delta{hueDelta, lightDelta}]
	if !ok {
		panic(fmt.Sprintf("missing command table entry for delta (%d, %d)", hueDelta, lightDelta))
	}
	cmd(s, pushValue)
}

func cmdNop(s *State, _ int64) {}

// cmdPush pushes the size of the block just exited. Note that the
// same-block "nop" case is handled by the (0,0) table entry above
// (cmdNop), never by this function falling through for a zero value —
// push is only ever dispatched for an actual (0,1) transition.
func cmdPush(s *State, pushValue int64) {
	s.Stack = append(s.Stack, pushValue)
}

func cmdPop(s *State, _ int64) {
	if len(s.Stack) < 1 {
		return
	}
	s.Stack = s.Stack[:len(s.Stack)-1]
}

func cmdAdd(s *State, _ int64) {
	if len(s.Stack) < 2 {
		return
	}
	a, b := pop2(s)
	s.Stack = append(s.Stack, a+b)
}

func cmdSubtract(s *State, _ int64) {
	if len(s.Stack) < 2 {
		return
	}
	// second_from_top - top
	top, second := popTopThenSecond(s)
	s.Stack = append(s.Stack, second-top)
}

func cmdMultiply(s *State, _ int64) {
	if len(s.Stack) < 2 {
		return
	}
	a, b := pop2(s)
	s.Stack = append(s.Stack, a*b)
}

func cmdDivide(s *State, _ int64) {
	if len(s.Stack) < 2 {
		return
	}
	top := s.Stack[len(s.Stack)-1]
	if top == 0 {
		return
	}
	top, second := popTopThenSecond(s)
	s.Stack = append(s.Stack, second/top)
}

func cmdModulo(s *State, _ int64) {
	if len(s.Stack) < 2 {
		return
	}
	top := s.Stack[len(s.Stack)-1]
	if top == 0 {
		return
	}
	top, second := popTopThenSecond(s)
	s.Stack = append(s.Stack, mathMod(second, top))
}

func cmdNot(s *State, _ int64) {
	if len(s.Stack) < 1 {
		return
	}
	top := s.Stack[len(s.Stack)-1]
	v := int64(0)
	if top == 0 {
		v = 1
	}
	s.Stack[len(s.Stack)-1] = v
}

func cmdGreater(s *State, _ int64) {
	if len(s.Stack) < 2 {
		return
	}
	top, second := popTopThenSecond(s)
	if second > top {
		s.Stack = append(s.Stack, 1)
	} else {
		s.Stack = append(s.Stack, 0)
	}
}

func cmdPointer(s *State, _ int64) {
	if len(s.Stack) < 1 {
		return
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	s.Direction = s.Direction.Rotate(int(top))
}

func cmdSwitch(s *State, _ int64) {
	if len(s.Stack) < 1 {
		return
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	steps := top % 2
	if steps < 0 {
		steps = -steps
	}
	for i := int64(0); i < steps; i++ {
		s.Chooser = s.Chooser.Next()
	}
}

func cmdDuplicate(s *State, _ int64) {
	if len(s.Stack) < 1 {
		return
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = append(s.Stack, top)
}

// cmdRoll pops turns then depth, and rolls the remaining stack to the
// given depth by the given number of turns. Depth must be
// non-negative and no larger than the stack size after the two pops;
// if those preconditions fail, the roll (including the two operand
// pops) is a complete no-op, per SPEC_FULL.md §4.4's atomicity rule.
func cmdRoll(s *State, _ int64) {
	if len(s.Stack) < 2 {
		return
	}

	turns := s.Stack[len(s.Stack)-1]
	depth := s.Stack[len(s.Stack)-2]
	remaining := len(s.Stack) - 2

	if depth < 0 || int(depth) > remaining {
		return
	}

	// Commit: pop the two operands for real now that preconditions hold.
	s.Stack = s.Stack[:remaining]
	d := int(depth)
	if d == 0 {
		return
	}
	section := s.Stack[len(s.Stack)-d:]

	if turns >= 0 {
		n := turns % int64(d)
		for i := int64(0); i < n; i++ {
			rollOnce(section)
		}
	} else {
		n := (-turns) % int64(d)
		for i := int64(0); i < n; i++ {
			rollOnceBack(section)
		}
	}
}

// rollOnce buries the top of section d deep: the last element moves to
// the front of section, and everything else shifts up by one.
func rollOnce(section []int64) {
	if len(section) < 2 {
		return
	}
	top := section[len(section)-1]
	copy(section[1:], section[:len(section)-1])
	section[0] = top
}

// rollOnceBack is rollOnce's inverse: the front of section moves to the
// end.
func rollOnceBack(section []int64) {
	if len(section) < 2 {
		return
	}
	bottom := section[0]
	copy(section[:len(section)-1], section[1:])
	section[len(section)-1] = bottom
}

func cmdInNumber(s *State, _ int64) {
	n, ok := s.Input.TakeNumber()
	if !ok {
		return
	}
	s.Stack = append(s.Stack, n)
}

func cmdInChar(s *State, _ int64) {
	r, ok := s.Input.TakeChar()
	if !ok {
		return
	}
	s.Stack = append(s.Stack, int64(r))
}

func cmdOutNumber(s *State, _ int64) {
	if len(s.Stack) < 1 {
		return
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	fmt.Fprintf(s.Out, "%d", top)
}

// cmdOutChar pops the top value and writes it as UTF-8 if it is a valid
// Unicode scalar value; otherwise the pop is rolled back, per the
// atomicity rule — a non-scalar value must not be silently consumed.
func cmdOutChar(s *State, _ int64) {
	if len(s.Stack) < 1 {
		return
	}
	top := s.Stack[len(s.Stack)-1]
	if top < 0 || top > 0x10FFFF || (top >= 0xD800 && top <= 0xDFFF) {
		return
	}
	s.Stack = s.Stack[:len(s.Stack)-1]
	fmt.Fprintf(s.Out, "%c", rune(top))
}

// pop2 pops the top two values and returns them as (first-popped,
// second-popped) == (top, second-from-top), for operations where
// operand order doesn't matter (add, multiply).
func pop2(s *State) (int64, int64) {
	top := s.Stack[len(s.Stack)-1]
	second := s.Stack[len(s.Stack)-2]
	s.Stack = s.Stack[:len(s.Stack)-2]
	return top, second
}

// popTopThenSecond pops the top two values and returns (top,
// second-from-top), for operations where operand order matters
// (subtract, divide, modulo, greater).
func popTopThenSecond(s *State) (top, second int64) {
	return pop2(s)
}

// mathMod returns a modulo b with the result's sign matching b
// (mathematical modulo), per SPEC_FULL.md §4.4's sign rule.
func mathMod(a, b int64) int64 {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}
