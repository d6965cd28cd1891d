package mapper

import (
	"fmt"

	"github.com/retroenv/snesgodisasm/internal/program"
)

// Image is a read-only ROM image together with its address mapping.
type Image struct {
	data   []byte
	mapper *Mapper
}

// NewImage returns an image for the ROM data. The mapper has to be created
// for the size of the data.
func NewImage(data []byte, m *Mapper) (*Image, error) {
	if len(data) != m.Size() {
		return nil, fmt.Errorf("%w: image size 0x%x does not match mapper size 0x%x",
			ErrOutOfRange, len(data), m.Size())
	}
	return &Image{
		data:   data,
		mapper: m,
	}, nil
}

// Mapper returns the address mapper of the image.
func (img *Image) Mapper() *Mapper {
	return img.mapper
}

// Data returns the raw ROM bytes. The slice must not be modified.
func (img *Image) Data() []byte {
	return img.data
}

// Size returns the ROM size in bytes.
func (img *Image) Size() int {
	return len(img.data)
}

// ReadByte reads the ROM byte at the given CPU address.
func (img *Image) ReadByte(address program.Address) (byte, error) {
	offset, err := img.mapper.ToRomOffset(address)
	if err != nil {
		return 0, err
	}
	return img.data[offset], nil
}

// ReadWord reads a little endian word, the second byte is read from the
// same bank.
func (img *Image) ReadWord(address program.Address) (uint16, error) {
	b, err := img.Bytes(address, 2)
	if err != nil {
		return 0, err
	}
	return uint16(b[1])<<8 | uint16(b[0]), nil
}

// ReadLong reads a little endian 24 bit value from the same bank.
func (img *Image) ReadLong(address program.Address) (program.Address, error) {
	b, err := img.Bytes(address, 3)
	if err != nil {
		return 0, err
	}
	return program.Address(uint32(b[2])<<16 | uint32(b[1])<<8 | uint32(b[0])), nil
}

// Bytes reads n bytes starting at the given address. The address wraps inside
// the bank like the program counter, every byte has to map to ROM.
func (img *Image) Bytes(address program.Address, n int) ([]byte, error) {
	buf := make([]byte, 0, n)
	for i := range n {
		b, err := img.ReadByte(address.AddInBank(i))
		if err != nil {
			return buf, err
		}
		buf = append(buf, b)
	}
	return buf, nil
}

// Offset returns the ROM offset of a CPU address.
func (img *Image) Offset(address program.Address) (int, error) {
	return img.mapper.ToRomOffset(address)
}

// Canonical returns the canonical address of the ROM byte that the address
// maps to, so that mirrored addresses compare equal.
func (img *Image) Canonical(address program.Address) (program.Address, error) {
	offset, err := img.mapper.ToRomOffset(address)
	if err != nil {
		return 0, err
	}
	return img.mapper.ToLinear(offset)
}
