package m65816

import (
	"strings"

	"github.com/retroenv/snesgodisasm/internal/program"
)

// Instruction is a decoded 65816 instruction at a CPU address.
type Instruction struct {
	Address    program.Address
	Opcode     byte
	Name       string
	Addressing AddressingMode
	Flow       Flow
	Operand    uint32 // little endian operand value
	Size       int    // opcode and operand bytes
	State      State  // state the instruction was decoded with
}

// Length returns the size of the instruction in bytes.
func (ins Instruction) Length() int {
	return ins.Size
}

// Encode returns the machine code bytes of the instruction.
func (ins Instruction) Encode() []byte {
	b := make([]byte, ins.Size)
	b[0] = ins.Opcode
	for i := 1; i < ins.Size; i++ {
		b[i] = byte(ins.Operand >> (8 * (i - 1)))
	}
	return b
}

// String returns the assembler notation of the instruction.
func (ins Instruction) String() string {
	operand := formatOperand(ins)
	if operand == "" {
		return ins.Name
	}

	var sb strings.Builder
	sb.WriteString(ins.Name)
	sb.WriteByte(' ')
	sb.WriteString(operand)
	return sb.String()
}
