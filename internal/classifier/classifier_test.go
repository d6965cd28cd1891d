package classifier

import (
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/snesgodisasm/internal/arch/m65816"
	"github.com/retroenv/snesgodisasm/internal/disasm"
	"github.com/retroenv/snesgodisasm/internal/hints"
	"github.com/retroenv/snesgodisasm/internal/mapper"
	"github.com/retroenv/snesgodisasm/internal/program"
)

func setup(t *testing.T, hintContent string) (*mapper.Image, *hints.Set) {
	t.Helper()

	m, err := mapper.New(mapper.LoROM, 0x8000, false)
	assert.NoError(t, err)
	image, err := mapper.NewImage(make([]byte, 0x8000), m)
	assert.NoError(t, err)

	file, err := hints.Load(strings.NewReader(hintContent))
	assert.NoError(t, err)
	return image, file.Resolve(log.NewTestLogger(t), m)
}

func byteOffsets(offset, size int) []int {
	offsets := make([]int, size)
	for i := range offsets {
		offsets[i] = offset + i
	}
	return offsets
}

func decoded(offset, size int) disasm.Decoded {
	return disasm.Decoded{
		Offset:      offset,
		Offsets:     byteOffsets(offset, size),
		Address:     program.NewAddress(0, uint16(0x8000+offset)),
		Instruction: m65816.Instruction{Size: size},
		States:      []m65816.State{{}},
	}
}

type expectedRegion struct {
	start, end int
	class      program.Class
}

func assertRegions(t *testing.T, expected []expectedRegion, regions program.RegionMap) {
	t.Helper()

	assert.Len(t, regions, len(expected))
	for i, region := range regions {
		assert.Equal(t, expected[i].start, region.Start, "region %d", i)
		assert.Equal(t, expected[i].end, region.End, "region %d", i)
		assert.Equal(t, expected[i].class, region.Class, "region %d", i)
	}
	assert.NoError(t, regions.Validate(0x8000))
}

func TestClassify_TracedOnly(t *testing.T) {
	image, set := setup(t, "")
	trace := &disasm.Trace{
		Instructions: []disasm.Decoded{decoded(0, 1), decoded(1, 3), decoded(0x10, 1)},
		Ambiguous:    []int{0x20},
	}

	regions, conflicts, err := Classify(log.NewTestLogger(t), image, trace, set)
	assert.NoError(t, err)
	assert.Empty(t, conflicts)

	assertRegions(t, []expectedRegion{
		{0x00, 0x04, program.Code},
		{0x04, 0x10, program.Unknown},
		{0x10, 0x11, program.Code},
		{0x11, 0x20, program.Unknown},
		{0x20, 0x21, program.Ambiguous},
		{0x21, 0x8000, program.Unknown},
	}, regions)
	assert.Equal(t, program.Address(0x008010), regions[2].Address)
}

func TestClassify_HintPrecedence(t *testing.T) {
	image, set := setup(t, `
data:
  - {start: "$00:8001", end: "$00:8001"}
  - {start: "$00:9000", end: "$00:900F"}
code:
  - {start: "$00:8020", end: "$00:8021"}
`)
	trace := &disasm.Trace{
		Instructions: []disasm.Decoded{decoded(0, 3)},
		Ambiguous:    []int{0x20, 0x21},
	}

	regions, conflicts, err := Classify(log.NewTestLogger(t), image, trace, set)
	assert.NoError(t, err)

	assertRegions(t, []expectedRegion{
		{0x0000, 0x0001, program.Code},
		{0x0001, 0x0002, program.Data},
		{0x0002, 0x0003, program.Code},
		{0x0003, 0x0020, program.Unknown},
		{0x0020, 0x0022, program.Code},
		{0x0022, 0x1000, program.Unknown},
		{0x1000, 0x1010, program.Data},
		{0x1010, 0x8000, program.Unknown},
	}, regions)

	// the data hint over unknown bytes is no override
	assert.Len(t, conflicts, 2)
	assert.Equal(t, program.HintOverride, conflicts[0].Kind)
	assert.Equal(t, program.Address(0x008001), conflicts[0].Address)
	assert.Equal(t, "data hint overrides traced code for 1 bytes", conflicts[0].Reason)
	assert.Equal(t, program.Address(0x008020), conflicts[1].Address)
	assert.Equal(t, "code hint overrides traced ambiguous for 2 bytes", conflicts[1].Reason)
}

func TestClassify_Tables(t *testing.T) {
	image, set := setup(t, `code: [{start: "$00:8000", end: "$00:80FF"}]`)
	trace := &disasm.Trace{
		Instructions: []disasm.Decoded{decoded(0, 3)},
		Tables:       []program.Region{{Start: 3, End: 7, Address: 0x008003, Class: program.Data}},
	}

	regions, conflicts, err := Classify(log.NewTestLogger(t), image, trace, set)
	assert.NoError(t, err)
	assert.Empty(t, conflicts)

	class, ok := regions.Lookup(5)
	assert.True(t, ok)
	assert.Equal(t, program.Data, class)
	class, ok = regions.Lookup(0x50)
	assert.True(t, ok)
	assert.Equal(t, program.Code, class)
	assert.Equal(t, 0x100-4, regions.Bytes(program.Code))
}

func TestClassify_DataKinds(t *testing.T) {
	image, set := setup(t, `
data:
  - {start: "$00:9000", end: "$00:90FF", kind: graphics}
  - {start: "$00:9100", end: "$00:91FF"}
`)
	trace := &disasm.Trace{
		Tables: []program.Region{
			{Start: 0x1040, End: 0x1046, Class: program.Data, Kind: program.JumpTableLongData},
			{Start: 0x1180, End: 0x1186, Class: program.Data, Kind: program.JumpTableData},
			{Start: 0x2000, End: 0x2004, Class: program.Data, Kind: program.JumpTableData},
		},
	}

	regions, _, err := Classify(log.NewTestLogger(t), image, trace, set)
	assert.NoError(t, err)

	type region struct {
		Start, End int
		Class      program.Class
		Kind       program.DataKind
	}
	var got []region
	for _, r := range regions {
		got = append(got, region{r.Start, r.End, r.Class, r.Kind})
	}
	want := []region{
		{0x0000, 0x1000, program.Unknown, program.UnspecifiedData},
		{0x1000, 0x1100, program.Data, program.GraphicsData},
		{0x1100, 0x1180, program.Data, program.UnspecifiedData},
		{0x1180, 0x1186, program.Data, program.JumpTableData},
		{0x1186, 0x1200, program.Data, program.UnspecifiedData},
		{0x1200, 0x2000, program.Unknown, program.UnspecifiedData},
		{0x2000, 0x2004, program.Data, program.JumpTableData},
		{0x2004, 0x8000, program.Unknown, program.UnspecifiedData},
	}
	assert.Equal(t, want, got)
	assert.NoError(t, regions.Validate(0x8000))
}
