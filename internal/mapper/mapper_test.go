package mapper

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/snesgodisasm/internal/program"
)

func TestToLinear(t *testing.T) {
	tests := []struct {
		name     string
		mode     Mode
		fastROM  bool
		offset   int
		expected program.Address
	}{
		{name: "lorom first byte", mode: LoROM, offset: 0x000000, expected: 0x008000},
		{name: "lorom end of bank", mode: LoROM, offset: 0x007FFF, expected: 0x00FFFF},
		{name: "lorom second bank", mode: LoROM, offset: 0x008000, expected: 0x018000},
		{name: "lorom fast mirror", mode: LoROM, fastROM: true, offset: 0x008000, expected: 0x818000},
		{name: "lorom last bank uses fast mirror", mode: LoROM, offset: 0x3F8000, expected: 0xFF8000},
		{name: "hirom first byte", mode: HiROM, offset: 0x000000, expected: 0xC00000},
		{name: "hirom within bank", mode: HiROM, offset: 0x01ABCD, expected: 0xC1ABCD},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.mode, maxRomSize, tt.fastROM)
			assert.NoError(t, err)

			address, err := m.ToLinear(tt.offset)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, address)

			offset, err := m.ToRomOffset(address)
			assert.NoError(t, err)
			assert.Equal(t, tt.offset, offset)
		})
	}
}

func TestToRomOffset(t *testing.T) {
	tests := []struct {
		name     string
		mode     Mode
		address  program.Address
		expected int
		wantErr  error
	}{
		{name: "lorom bank 0", mode: LoROM, address: 0x008000, expected: 0x000000},
		{name: "lorom mirror bank", mode: LoROM, address: 0x808000, expected: 0x000000},
		{name: "lorom bank 1", mode: LoROM, address: 0x01FFFF, expected: 0x00FFFF},
		{name: "lorom bank 1f", mode: LoROM, address: 0x1F8000, expected: 0x0F8000},
		{name: "lorom registers", mode: LoROM, address: 0x002100, wantErr: ErrUnmapped},
		{name: "lorom low ram mirror", mode: LoROM, address: 0x800010, wantErr: ErrUnmapped},
		{name: "lorom wram", mode: LoROM, address: 0x7E8000, wantErr: ErrUnmapped},
		{name: "lorom sram", mode: LoROM, address: 0x700000, wantErr: ErrUnmapped},
		{name: "lorom past image", mode: LoROM, address: 0x208000, wantErr: ErrOutOfRange},
		{name: "hirom bank c0", mode: HiROM, address: 0xC01234, expected: 0x001234},
		{name: "hirom system bank upper half", mode: HiROM, address: 0x00FFFC, expected: 0x00FFFC},
		{name: "hirom system bank lower half", mode: HiROM, address: 0x001234, wantErr: ErrUnmapped},
		{name: "hirom wram", mode: HiROM, address: 0x7F0000, wantErr: ErrUnmapped},
		{name: "hirom past image", mode: HiROM, address: 0xD00000, wantErr: ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.mode, 0x100000, false)
			assert.NoError(t, err)

			offset, err := m.ToRomOffset(tt.address)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				var mappingErr *MappingError
				assert.ErrorAs(t, err, &mappingErr)
				assert.Equal(t, tt.address, mappingErr.Address)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, offset)
		})
	}
}

func TestToLinear_OutOfRange(t *testing.T) {
	m, err := New(LoROM, 0x8000, false)
	assert.NoError(t, err)

	_, err = m.ToLinear(0x8000)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = m.ToLinear(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(LoROM, 0, false)
	assert.Error(t, err)
	_, err = New(LoROM, maxRomSize+1, false)
	assert.Error(t, err)
	_, err = New(Mode(7), 0x8000, false)
	assert.Error(t, err)
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("LoROM")
	assert.NoError(t, err)
	assert.Equal(t, LoROM, mode)

	mode, err = ParseMode("hirom")
	assert.NoError(t, err)
	assert.Equal(t, HiROM, mode)
	assert.Equal(t, "hirom", mode.String())

	_, err = ParseMode("exhirom")
	assert.Error(t, err)
}

func TestImage(t *testing.T) {
	data := make([]byte, 0x10000)
	data[0x7FFF] = 0x12
	data[0x0000] = 0x34
	data[0x7FFC] = 0x00
	data[0x7FFD] = 0x80
	data[0x8000] = 0x56

	m, err := New(LoROM, len(data), false)
	assert.NoError(t, err)
	img, err := NewImage(data, m)
	assert.NoError(t, err)

	b, err := img.ReadByte(0x018000)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x56), b)

	word, err := img.ReadWord(0x00FFFC)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x8000), word)

	// the second byte wraps to $00:0000 which is not ROM
	_, err = img.ReadWord(0x00FFFF)
	assert.ErrorIs(t, err, ErrUnmapped)

	canonical, err := img.Canonical(0x80FFFC)
	assert.NoError(t, err)
	assert.Equal(t, program.Address(0x00FFFC), canonical)

	_, err = NewImage(data[:0x8000], m)
	assert.Error(t, err)
}
