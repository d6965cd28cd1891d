package symbols

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/snesgodisasm/internal/disasm"
	"github.com/retroenv/snesgodisasm/internal/hints"
	"github.com/retroenv/snesgodisasm/internal/mapper"
	"github.com/retroenv/snesgodisasm/internal/options"
	"github.com/retroenv/snesgodisasm/internal/program"
)

const labelHints = `
entry_points:
  - {address: "$00:8010", name: Init}
  - {address: "$00:8030", name: Reset}
  - {address: "$00:8040", name: _label_008020}
data:
  - {start: "$00:9000", end: "$00:900F", name: Tiles}
`

func assignTest(t *testing.T, code map[uint16][]byte, hintContent string) []program.Label {
	t.Helper()

	data := make([]byte, 0x8000)
	data[0x7FFC] = 0x00 // reset vector
	data[0x7FFD] = 0x80
	for address, b := range code {
		copy(data[address-0x8000:], b)
	}

	m, err := mapper.New(mapper.LoROM, len(data), false)
	assert.NoError(t, err)
	image, err := mapper.NewImage(data, m)
	assert.NoError(t, err)

	file, err := hints.Load(strings.NewReader(hintContent))
	assert.NoError(t, err)
	logger := log.NewTestLogger(t)
	hintSet := file.Resolve(logger, m)
	assert.Empty(t, hintSet.Conflicts)

	trace, err := disasm.New(logger, image, options.Tracer{Workers: 2}, hintSet).Trace(context.Background())
	assert.NoError(t, err)

	return Assign(logger, trace, hintSet, image)
}

func TestAssign(t *testing.T) {
	labels := assignTest(t, map[uint16][]byte{
		0x8000: {0x20, 0x10, 0x80},       // jsr $8010
		0x8003: {0x22, 0x10, 0x80, 0x80}, // jsl $808010, mirror of $00:8010
		0x8007: {0x4C, 0x20, 0x80},       // jmp $8020
		0x8010: {0x60},                   // rts
		0x8020: {0xF0, 0x02},             // beq $8024
		0x8022: {0xDB},                   // stp
		0x8024: {0x20, 0x00, 0x80},       // jsr $8000
		0x8027: {0xDB},
		0x8030: {0xDB},
		0x8040: {0xDB},
	}, labelHints)

	expected := []program.Label{
		{
			Name:    "Reset",
			Address: 0x008000,
			Kind:    program.Vector,
			Provenance: []program.Xref{
				{From: 0x008024, To: 0x008000, Kind: program.XrefCall},
				{From: 0x00FFFC, To: 0x008000, Kind: program.XrefInterruptVector},
			},
		},
		{
			Name:    "Init",
			Address: 0x008010,
			Kind:    program.Subroutine,
			Provenance: []program.Xref{
				{From: 0x008000, To: 0x008010, Kind: program.XrefCall},
				{From: 0x008003, To: 0x808010, Kind: program.XrefCall},
			},
		},
		{
			Name:       "_label_008020_1",
			Address:    0x008020,
			Kind:       program.BranchTarget,
			Provenance: []program.Xref{{From: 0x008007, To: 0x008020, Kind: program.XrefJump}},
		},
		{
			Name:       "_label_008024",
			Address:    0x008024,
			Kind:       program.BranchTarget,
			Provenance: []program.Xref{{From: 0x008020, To: 0x008024, Kind: program.XrefBranch}},
		},
		{Name: "_func_008030", Address: 0x008030, Kind: program.Subroutine},
		{Name: "_label_008020", Address: 0x008040, Kind: program.Subroutine},
		{Name: "Tiles", Address: 0x009000, Kind: program.DataBlock},
	}

	if diff := cmp.Diff(expected, labels); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestAssign_UniqueNames(t *testing.T) {
	labels := assignTest(t, map[uint16][]byte{
		0x8000: {0x20, 0x10, 0x80}, // jsr $8010
		0x8003: {0x20, 0x20, 0x80}, // jsr $8020
		0x8006: {0xDB},
		0x8010: {0x60},
		0x8020: {0x60},
	}, `
code:
  - {start: "$00:8010", end: "$00:8010", name: Helper}
  - {start: "$00:8020", end: "$00:8020", name: Helper}
`)

	names := map[string]program.Address{}
	for _, label := range labels {
		owner, ok := names[label.Name]
		assert.False(t, ok, "name %s used by %s and %s", label.Name, owner, label.Address)
		names[label.Name] = label.Address
	}
	assert.Equal(t, program.Address(0x008010), names["Helper"])
	assert.Equal(t, program.Address(0x008020), names["_func_008020"])
}

func TestAssign_DataTableWithoutCode(t *testing.T) {
	labels := assignTest(t, map[uint16][]byte{
		0x8000: {0x7C, 0x00, 0x90}, // jmp ($9000,x)
		0x8010: {0xDB},
		0x8020: {0xDB},
		0x9000: {0x10, 0x80, 0x20, 0x80},
	}, `
jump_tables:
  - {site: "$00:8000", table: "$00:9000", entries: 2}
`)

	var kinds []program.LabelKind
	for _, label := range labels {
		kinds = append(kinds, label.Kind)
	}
	assert.Equal(t, []program.LabelKind{program.Vector, program.Subroutine, program.Subroutine, program.DataBlock}, kinds)
	assert.Equal(t, "_data_009000", labels[3].Name)
	assert.Equal(t, program.JumpTableData, labels[3].DataKind)
	assert.Equal(t, "_func_008010", labels[1].Name)
	assert.Equal(t, program.UnspecifiedData, labels[1].DataKind)
}

func TestAssign_DataKinds(t *testing.T) {
	labels := assignTest(t, map[uint16][]byte{
		0x8000: {0x7C, 0x00, 0x90}, // jmp ($9000,x)
		0x8010: {0xDB},
		0x9000: {0x10, 0x80},
	}, `
jump_tables:
  - {site: "$00:8000", table: "$00:9000", entries: 1}
data:
  - {start: "$00:9000", end: "$00:9001", kind: text}
  - {start: "$00:A000", end: "$00:A0FF", kind: graphics, name: Font}
  - {start: "$00:B000", end: "$00:B0FF"}
`)

	kinds := map[string]program.DataKind{}
	for _, label := range labels {
		if label.Kind == program.DataBlock {
			kinds[label.Name] = label.DataKind
		}
	}
	want := map[string]program.DataKind{
		"_data_009000": program.TextData,
		"Font":         program.GraphicsData,
		"_data_00b000": program.UnspecifiedData,
	}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("data kinds mismatch (-want +got):\n%s", diff)
	}
}
