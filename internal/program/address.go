package program

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// AddressMask limits an address to the 24 bit CPU address space.
const AddressMask = 0xFFFFFF

var errInvalidAddress = errors.New("invalid address")

// Address is a linear 24 bit address in the CPU address space, the bank is
// stored in bits 16-23 and the offset inside the bank in bits 0-15.
type Address uint32

// NewAddress returns the address for the given bank and bank offset.
func NewAddress(bank uint8, offset uint16) Address {
	return Address(uint32(bank)<<16 | uint32(offset))
}

// Bank returns the bank part of the address.
func (a Address) Bank() uint8 {
	return uint8(a >> 16)
}

// Offset returns the 16 bit offset inside the bank.
func (a Address) Offset() uint16 {
	return uint16(a)
}

// AddInBank returns the address n bytes after a, wrapping around inside the
// bank like the program counter does.
func (a Address) AddInBank(n int) Address {
	return NewAddress(a.Bank(), uint16(int(a.Offset())+n))
}

func (a Address) String() string {
	return fmt.Sprintf("$%02X:%04X", a.Bank(), a.Offset())
}

// ParseAddress parses an address in one of the notations "$BB:OOOO",
// "$BBOOOO", "0xBBOOOO" or "BBOOOO".
func ParseAddress(s string) (Address, error) {
	value := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(value, "$"):
		value = value[1:]
	case strings.HasPrefix(value, "0x"), strings.HasPrefix(value, "0X"):
		value = value[2:]
	}

	if bank, offset, ok := strings.Cut(value, ":"); ok {
		if bank == "" || offset == "" || len(bank) > 2 || len(offset) > 4 {
			return 0, fmt.Errorf("%w '%s'", errInvalidAddress, s)
		}
		value = bank + strings.Repeat("0", 4-len(offset)) + offset
	}

	if value == "" {
		return 0, fmt.Errorf("%w '%s'", errInvalidAddress, s)
	}
	i, err := strconv.ParseUint(value, 16, 32)
	if err != nil || i > AddressMask {
		return 0, fmt.Errorf("%w '%s'", errInvalidAddress, s)
	}
	return Address(i), nil
}
