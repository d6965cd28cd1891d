package m65816

import (
	"errors"
	"fmt"

	"github.com/retroenv/snesgodisasm/internal/program"
)

var (
	// ErrUndefined is returned for opcodes that are reserved and do not decode to an instruction.
	ErrUndefined = errors.New("undefined opcode")
	// ErrOutOfBounds is returned when the operand bytes are not available.
	ErrOutOfBounds = errors.New("instruction out of bounds")
)

// DecodeError describes a failure to decode the instruction at an address.
type DecodeError struct {
	Address program.Address
	Opcode  byte
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding opcode 0x%02x at %s: %s", e.Opcode, e.Address, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Memory provides read access to the bytes at CPU addresses.
type Memory interface {
	Bytes(address program.Address, n int) ([]byte, error)
}

// Decode decodes the instruction at the start of data under the given width
// state. The returned instruction has no address set.
func Decode(data []byte, state State) (Instruction, error) {
	if len(data) == 0 {
		return Instruction{}, ErrOutOfBounds
	}

	opcode := data[0]
	op := Opcodes[opcode]
	if op.Reserved {
		return Instruction{}, &DecodeError{Opcode: opcode, Err: ErrUndefined}
	}

	size := op.Size(state)
	if len(data) < size {
		return Instruction{}, &DecodeError{Opcode: opcode, Err: ErrOutOfBounds}
	}

	var operand uint32
	for i := size - 1; i >= 1; i-- {
		operand = operand<<8 | uint32(data[i])
	}

	return Instruction{
		Opcode:     opcode,
		Name:       op.Name,
		Addressing: op.Addressing,
		Flow:       op.Flow,
		Operand:    operand,
		Size:       size,
		State:      state,
	}, nil
}

// DecodeAt decodes the instruction at the CPU address. A failure to read the
// opcode byte is returned unchanged, missing operand bytes result in
// ErrOutOfBounds.
func DecodeAt(mem Memory, address program.Address, state State) (Instruction, error) {
	first, err := mem.Bytes(address, 1)
	if err != nil {
		return Instruction{}, err
	}

	opcode := first[0]
	op := Opcodes[opcode]
	if op.Reserved {
		return Instruction{}, &DecodeError{Address: address, Opcode: opcode, Err: ErrUndefined}
	}

	data, err := mem.Bytes(address, op.Size(state))
	if err != nil {
		return Instruction{}, &DecodeError{Address: address, Opcode: opcode,
			Err: fmt.Errorf("%w: %w", ErrOutOfBounds, err)}
	}

	ins, err := Decode(data, state)
	if err != nil {
		var decodeErr *DecodeError
		if errors.As(err, &decodeErr) {
			decodeErr.Address = address
		}
		return Instruction{}, err
	}
	ins.Address = address
	return ins, nil
}
