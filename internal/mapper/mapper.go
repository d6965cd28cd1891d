// Package mapper translates between ROM file offsets and the 24 bit CPU address space.
package mapper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/retroenv/snesgodisasm/internal/program"
)

// Mode is a ROM mapping mode.
type Mode uint8

// Supported mapping modes.
const (
	LoROM Mode = iota // 32 KiB banks mapped into the upper half of each bank
	HiROM             // 64 KiB banks mapped linearly from bank $C0
)

const (
	fastBankBit = 0x800000
	maxRomSize  = 0x400000
)

var (
	// ErrUnmapped is returned for addresses that do not map to ROM, like WRAM,
	// hardware registers, SRAM or open bus.
	ErrUnmapped = errors.New("address is not mapped to ROM")
	// ErrOutOfRange is returned for ROM offsets outside of the image.
	ErrOutOfRange = errors.New("offset is outside of the ROM image")

	errUnsupportedMode = errors.New("unsupported mapping mode")
)

// MappingError describes a failed address translation.
type MappingError struct {
	Address program.Address
	Offset  int
	Err     error
}

func (e *MappingError) Error() string {
	if errors.Is(e.Err, ErrOutOfRange) {
		return fmt.Sprintf("mapping %s (offset 0x%06x): %v", e.Address, e.Offset, e.Err)
	}
	return fmt.Sprintf("mapping %s: %v", e.Address, e.Err)
}

func (e *MappingError) Unwrap() error {
	return e.Err
}

// ParseMode returns the mapping mode for the given name.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(name) {
	case "lorom", "lo":
		return LoROM, nil
	case "hirom", "hi":
		return HiROM, nil
	default:
		return 0, fmt.Errorf("%w '%s'", errUnsupportedMode, name)
	}
}

func (m Mode) String() string {
	switch m {
	case LoROM:
		return "lorom"
	case HiROM:
		return "hirom"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// Mapper implements the address translation of a mapping mode for a ROM of a
// given size. It has no mutable state and is safe for concurrent use.
type Mapper struct {
	mode    Mode
	size    int
	fastROM bool
}

// New returns a mapper for a ROM image of the given size. The FastROM flag
// does not change the translation, it only selects the fast bank mirror for
// addresses returned by ToLinear.
func New(mode Mode, size int, fastROM bool) (*Mapper, error) {
	if mode != LoROM && mode != HiROM {
		return nil, fmt.Errorf("%w %d", errUnsupportedMode, mode)
	}
	if size <= 0 || size > maxRomSize {
		return nil, fmt.Errorf("%w: size 0x%x", ErrOutOfRange, size)
	}
	return &Mapper{
		mode:    mode,
		size:    size,
		fastROM: fastROM,
	}, nil
}

// Mode returns the mapping mode.
func (m *Mapper) Mode() Mode {
	return m.mode
}

// Size returns the size of the mapped ROM image.
func (m *Mapper) Size() int {
	return m.size
}

// ToLinear returns the canonical CPU address of a ROM offset.
func (m *Mapper) ToLinear(offset int) (program.Address, error) {
	if offset < 0 || offset >= m.size {
		return 0, &MappingError{Offset: offset, Err: ErrOutOfRange}
	}

	var address uint32
	off := uint32(offset)
	switch m.mode {
	case LoROM:
		address = (off<<1)&0x7F0000 | off&0x7FFF | 0x8000
	case HiROM:
		address = off | 0xC00000
	}
	// the last 64 KiB of a 4 MiB LoROM are only reachable through the fast mirror
	if m.fastROM || address&0xFE0000 == 0x7E0000 {
		address |= fastBankBit
	}
	return program.Address(address), nil
}

// ToRomOffset returns the ROM offset that a CPU address maps to.
func (m *Mapper) ToRomOffset(address program.Address) (int, error) {
	a := uint32(address) & program.AddressMask

	if a&0xFE0000 == 0x7E0000 { // WRAM
		return 0, &MappingError{Address: address, Err: ErrUnmapped}
	}
	if a&0x408000 == 0 { // system area of banks $00-$3F and $80-$BF
		return 0, &MappingError{Address: address, Err: ErrUnmapped}
	}

	var offset int
	switch m.mode {
	case LoROM:
		if a&0x708000 == 0x700000 { // SRAM
			return 0, &MappingError{Address: address, Err: ErrUnmapped}
		}
		offset = int((a&0x7F0000)>>1 | a&0x7FFF)
	case HiROM:
		offset = int(a & 0x3FFFFF)
	}

	if offset >= m.size {
		return 0, &MappingError{Address: address, Offset: offset, Err: ErrOutOfRange}
	}
	return offset, nil
}
