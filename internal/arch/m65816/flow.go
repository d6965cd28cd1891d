package m65816

import "github.com/retroenv/snesgodisasm/internal/program"

// Flow describes how an instruction continues the execution.
type Flow uint8

// Control flow kinds.
const (
	SequentialFlow   Flow = iota // continues with the next instruction
	BranchFlow                   // conditional branch, continues with next instruction or target
	JumpFlow                     // unconditional transfer to a static target
	CallFlow                     // subroutine call to a static target
	IndirectJumpFlow             // transfer to a target read from memory
	IndirectCallFlow             // subroutine call to a target read from memory
	ReturnFlow                   // return from subroutine or interrupt
	InterruptFlow                // software interrupt, handlers are traced from the vectors
	StopFlow                     // stops the processor
)

var flowNames = map[Flow]string{
	SequentialFlow:   "sequential",
	BranchFlow:       "branch",
	JumpFlow:         "jump",
	CallFlow:         "call",
	IndirectJumpFlow: "indirect-jump",
	IndirectCallFlow: "indirect-call",
	ReturnFlow:       "return",
	InterruptFlow:    "interrupt",
	StopFlow:         "stop",
}

func (f Flow) String() string {
	return flowNames[f]
}

// Terminal returns whether the execution does not continue at the next instruction.
func (f Flow) Terminal() bool {
	switch f {
	case JumpFlow, IndirectJumpFlow, ReturnFlow, InterruptFlow, StopFlow:
		return true
	default:
		return false
	}
}

// Indirect returns whether the target is only known at runtime.
func (f Flow) Indirect() bool {
	return f == IndirectJumpFlow || f == IndirectCallFlow
}

// IsCall returns whether the flow is a subroutine call.
func (f Flow) IsCall() bool {
	return f == CallFlow || f == IndirectCallFlow
}

// Next returns the address of the following instruction, the program counter
// wraps inside the program bank.
func (ins Instruction) Next() program.Address {
	return ins.Address.AddInBank(ins.Size)
}

// Targets returns the statically known control transfer targets of the instruction.
func (ins Instruction) Targets() []program.Address {
	switch ins.Flow {
	case BranchFlow, JumpFlow, CallFlow:
	default:
		return nil
	}

	switch ins.Addressing {
	case RelativeAddressing, RelativeLongAddressing:
		return []program.Address{ins.relativeTarget()}
	case AbsoluteAddressing:
		return []program.Address{program.NewAddress(ins.Address.Bank(), uint16(ins.Operand))}
	case AbsoluteLongAddressing:
		return []program.Address{program.Address(ins.Operand & program.AddressMask)}
	default:
		return nil
	}
}

func (ins Instruction) relativeTarget() program.Address {
	displacement := int(int8(ins.Operand))
	if ins.Addressing == RelativeLongAddressing {
		displacement = int(int16(ins.Operand))
	}
	return ins.Address.AddInBank(ins.Size + displacement)
}
