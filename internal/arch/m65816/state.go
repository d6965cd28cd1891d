package m65816

import (
	"errors"
	"fmt"
	"strings"
)

// Processor status bits that select the register widths.
const (
	FlagM = 0x20 // accumulator and memory width, set means 8 bit
	FlagX = 0x10 // index register width, set means 8 bit
)

const (
	opcodeREP = 0xC2
	opcodeSEP = 0xE2
	opcodeXCE = 0xFB
)

var errInvalidState = errors.New("invalid width state")

// State is the register width state that decides the size of immediate operands.
type State struct {
	Acc16 bool // accumulator is 16 bit wide (M flag clear)
	Idx16 bool // index registers are 16 bit wide (X flag clear)
}

// String returns the state in the m8x8 notation.
func (s State) String() string {
	acc, idx := 8, 8
	if s.Acc16 {
		acc = 16
	}
	if s.Idx16 {
		idx = 16
	}
	return fmt.Sprintf("m%dx%d", acc, idx)
}

// ParseState parses a state in the m8x8 notation.
func ParseState(s string) (State, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m8x8", "":
		return State{}, nil
	case "m16x8":
		return State{Acc16: true}, nil
	case "m8x16":
		return State{Idx16: true}, nil
	case "m16x16":
		return State{Acc16: true, Idx16: true}, nil
	default:
		return State{}, fmt.Errorf("%w '%s'", errInvalidState, s)
	}
}

// Apply returns the width state after the instruction executed. REP clears
// and SEP sets the status bits of its immediate operand, XCE is assumed to
// switch to emulation mode which forces 8 bit registers. All other
// instructions keep the state, this includes PLP whose pulled value is not
// known statically.
func Apply(state State, ins Instruction) State {
	switch ins.Opcode {
	case opcodeREP:
		if ins.Operand&FlagM != 0 {
			state.Acc16 = true
		}
		if ins.Operand&FlagX != 0 {
			state.Idx16 = true
		}
	case opcodeSEP:
		if ins.Operand&FlagM != 0 {
			state.Acc16 = false
		}
		if ins.Operand&FlagX != 0 {
			state.Idx16 = false
		}
	case opcodeXCE:
		state = State{}
	}
	return state
}
