package program

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Address
		wantErr  bool
	}{
		{name: "bank notation", input: "$00:8000", expected: 0x008000},
		{name: "short offset", input: "$7E:10", expected: 0x7E0010},
		{name: "dollar", input: "$C08000", expected: 0xC08000},
		{name: "hex prefix", input: "0x018000", expected: 0x018000},
		{name: "plain hex", input: "808000", expected: 0x808000},
		{name: "whitespace", input: " $01:FFFF ", expected: 0x01FFFF},
		{name: "empty", input: "", wantErr: true},
		{name: "too large", input: "0x1000000", wantErr: true},
		{name: "not hex", input: "$00:80G0", wantErr: true},
		{name: "long bank", input: "$100:8000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			address, err := ParseAddress(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, address)
		})
	}
}

func TestAddress(t *testing.T) {
	address := NewAddress(0x80, 0xFFFE)
	assert.Equal(t, uint8(0x80), address.Bank())
	assert.Equal(t, uint16(0xFFFE), address.Offset())
	assert.Equal(t, "$80:FFFE", address.String())
	assert.Equal(t, Address(0x800001), address.AddInBank(3))
	assert.Equal(t, Address(0x80FFFD), address.AddInBank(-1))
}

func TestRegionMap_Validate(t *testing.T) {
	tests := []struct {
		name    string
		regions RegionMap
		size    int
		wantErr error
	}{
		{
			name: "partition",
			regions: RegionMap{
				{Start: 0, End: 4, Class: Code},
				{Start: 4, End: 10, Class: Unknown},
				{Start: 10, End: 16, Class: Data},
			},
			size: 16,
		},
		{
			name:    "gap",
			regions: RegionMap{{Start: 0, End: 4, Class: Code}, {Start: 5, End: 16, Class: Unknown}},
			size:    16,
			wantErr: errRegionGap,
		},
		{
			name:    "overlap",
			regions: RegionMap{{Start: 0, End: 6, Class: Code}, {Start: 5, End: 16, Class: Unknown}},
			size:    16,
			wantErr: errRegionOverlap,
		},
		{
			name:    "unmerged",
			regions: RegionMap{{Start: 0, End: 6, Class: Code}, {Start: 6, End: 16, Class: Code}},
			size:    16,
			wantErr: errRegionMerge,
		},
		{
			name: "data regions of different kinds",
			regions: RegionMap{
				{Start: 0, End: 6, Class: Data, Kind: GraphicsData},
				{Start: 6, End: 16, Class: Data},
			},
			size: 16,
		},
		{
			name: "unmerged data regions of one kind",
			regions: RegionMap{
				{Start: 0, End: 6, Class: Data, Kind: JumpTableData},
				{Start: 6, End: 16, Class: Data, Kind: JumpTableData},
			},
			size:    16,
			wantErr: errRegionMerge,
		},
		{
			name:    "short",
			regions: RegionMap{{Start: 0, End: 6, Class: Code}},
			size:    16,
			wantErr: errRegionSize,
		},
		{
			name:    "empty region",
			regions: RegionMap{{Start: 0, End: 0, Class: Code}, {Start: 0, End: 16, Class: Data}},
			size:    16,
			wantErr: errRegionEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.regions.Validate(tt.size)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegionMap_Lookup(t *testing.T) {
	regions := RegionMap{
		{Start: 0, End: 4, Class: Code},
		{Start: 4, End: 10, Class: Unknown},
		{Start: 10, End: 16, Class: Data},
	}

	class, ok := regions.Lookup(3)
	assert.True(t, ok)
	assert.Equal(t, Code, class)

	class, ok = regions.Lookup(10)
	assert.True(t, ok)
	assert.Equal(t, Data, class)

	_, ok = regions.Lookup(16)
	assert.False(t, ok)

	assert.Equal(t, 6, regions.Bytes(Data))
}

func TestSortXrefs(t *testing.T) {
	xrefs := []Xref{
		{From: 0x8010, To: 0x8100, Kind: XrefJump},
		{From: 0x8000, To: 0x8100, Kind: XrefCall},
		{From: 0x8010, To: 0x8100, Kind: XrefJump},
		{From: 0x8020, To: 0x8050, Kind: XrefBranch},
	}

	sorted := SortXrefs(xrefs)
	assert.Equal(t, []Xref{
		{From: 0x8020, To: 0x8050, Kind: XrefBranch},
		{From: 0x8000, To: 0x8100, Kind: XrefCall},
		{From: 0x8010, To: 0x8100, Kind: XrefJump},
	}, sorted)
	assert.False(t, Xref{Kind: XrefIndirectUnresolved}.Resolved())
	assert.Equal(t, "jump-table", XrefJumpTable.String())
}

func TestParseDataKind(t *testing.T) {
	tests := []struct {
		input    string
		expected DataKind
		wantErr  bool
	}{
		{input: "", expected: UnspecifiedData},
		{input: "graphics", expected: GraphicsData},
		{input: " Jump-Table-Long", expected: JumpTableLongData},
		{input: "overworld-layer-2", expected: OverworldLayer2Data},
		{input: "sprites", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			kind, err := ParseDataKind(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, errUnknownDataKind)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, kind)
		})
	}

	assert.Equal(t, "jump-table", JumpTableData.String())
	assert.Equal(t, "kind(200)", DataKind(200).String())
}
