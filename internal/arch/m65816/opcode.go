package m65816

// MaxInstructionSize is the maximum size of an instruction and its operands in bytes.
const MaxInstructionSize = 4

// Opcode is a CPU opcode that contains the instruction info and used addressing mode.
type Opcode struct {
	Name       string         // mnemonic (lowercase)
	Addressing AddressingMode // addressing mode
	Flow       Flow           // control flow behavior
	Reserved   bool           // reserved for future expansion, never emitted by assemblers
}

// Size returns the instruction size in bytes under the given width state.
func (o Opcode) Size(state State) int {
	return 1 + o.Addressing.OperandSize(state)
}

// WidthDependent returns whether the instruction size depends on the width state.
func (o Opcode) WidthDependent() bool {
	return o.Addressing == ImmediateMAddressing || o.Addressing == ImmediateXAddressing
}
