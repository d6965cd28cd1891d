package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/snesgodisasm/internal/hints"
	"github.com/retroenv/snesgodisasm/internal/mapper"
	"github.com/retroenv/snesgodisasm/internal/options"
	"github.com/retroenv/snesgodisasm/internal/program"
)

// testROM returns a 32 KiB LoROM image with the reset vector pointing to
// sei, clc, jmp $8010 and an rts at $8010.
func testROM() []byte {
	data := make([]byte, 0x8000)
	copy(data, []byte{0x78, 0x18, 0x4C, 0x10, 0x80})
	data[0x10] = 0x60
	data[0x7FFC] = 0x00
	data[0x7FFD] = 0x80
	return data
}

func TestNew(t *testing.T) {
	p := New(log.NewTestLogger(t))

	assert.NotNil(t, p)
	assert.NotNil(t, p.logger)
	assert.NotNil(t, p.loader)
}

func TestRun_EndToEnd(t *testing.T) {
	p := New(log.NewTestLogger(t))

	result, err := p.Run(context.Background(), Input{
		Data:   testROM(),
		Mode:   mapper.LoROM,
		Tracer: options.NewTracer(),
	})
	assert.NoError(t, err)

	expectedRegions := program.RegionMap{
		{Start: 0x0000, End: 0x0005, Address: 0x008000, Class: program.Code},
		{Start: 0x0005, End: 0x0010, Address: 0x008005, Class: program.Unknown},
		{Start: 0x0010, End: 0x0011, Address: 0x008010, Class: program.Code},
		{Start: 0x0011, End: 0x8000, Address: 0x008011, Class: program.Unknown},
	}
	if diff := cmp.Diff(expectedRegions, result.Regions); diff != "" {
		t.Errorf("regions mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, []program.Xref{
		{From: 0x00FFFC, To: 0x008000, Kind: program.XrefInterruptVector},
		{From: 0x008002, To: 0x008010, Kind: program.XrefJump},
	}, result.Xrefs)

	label, ok := result.LabelAt(0x008010)
	assert.True(t, ok)
	assert.Equal(t, program.BranchTarget, label.Kind)
	assert.Equal(t, "_label_008010", label.Name)
	label, ok = result.LabelAt(0x008000)
	assert.True(t, ok)
	assert.Equal(t, "Reset", label.Name)

	var texts []string
	for _, ins := range result.Instructions {
		texts = append(texts, ins.Text)
	}
	assert.Equal(t, []string{"sei", "clc", "jmp $8010", "rts"}, texts)

	assert.Equal(t, "lorom", result.Mode)
	assert.Equal(t, 0x8000, result.RomSize)
	assert.NotEqual(t, uint32(0), result.Checksum)
	assert.Empty(t, result.Report.Conflicts)
	assert.False(t, result.Report.Truncated)
}

func TestRun_InstructionWrapsInBank(t *testing.T) {
	p := New(log.NewTestLogger(t))

	// lda $1234 at $C1:FFFF reads its operand from $C1:0000, then rts
	data := make([]byte, 0x20000)
	data[0x1FFFF] = 0xAD
	copy(data[0x10000:], []byte{0x34, 0x12, 0x60})

	file, err := hints.Load(strings.NewReader(`entry_points: [{address: "$C1:FFFF"}]`))
	assert.NoError(t, err)

	result, err := p.Run(context.Background(), Input{
		Data:   data,
		Hints:  file,
		Mode:   mapper.HiROM,
		Tracer: options.NewTracer(),
	})
	assert.NoError(t, err)
	assert.Empty(t, result.Report.Conflicts)

	expected := map[int]program.Class{
		0x0FFFF: program.Unknown,
		0x10000: program.Code,
		0x10001: program.Code,
		0x10002: program.Code,
		0x10003: program.Unknown,
		0x1FFFE: program.Unknown,
		0x1FFFF: program.Code,
	}
	for offset, want := range expected {
		class, ok := result.Regions.Lookup(offset)
		assert.True(t, ok)
		assert.Equal(t, want, class, "offset 0x%05x", offset)
	}

	assert.Equal(t, []program.Instruction{
		{Address: 0xC10002, Offset: 0x10002, Bytes: []byte{0x60}, Text: "rts", States: []string{"m8x8"}},
		{Address: 0xC1FFFF, Offset: 0x1FFFF, Bytes: []byte{0xAD, 0x34, 0x12}, Text: "lda $1234", States: []string{"m8x8"}},
	}, result.Instructions)
}

func TestRun_ReportMergesAllStages(t *testing.T) {
	p := New(log.NewTestLogger(t))

	file, err := hints.Load(strings.NewReader(`
entry_points:
  - address: "$7E:0000"
data:
  - {start: "$00:8010", end: "$00:8010"}
`))
	assert.NoError(t, err)

	result, err := p.Run(context.Background(), Input{
		Data:   testROM(),
		Hints:  file,
		Mode:   mapper.LoROM,
		Tracer: options.NewTracer(),
	})
	assert.NoError(t, err)

	assert.Equal(t, 1, result.Report.Count(program.InvalidHint))
	assert.Equal(t, 1, result.Report.Count(program.HintOverride))

	class, ok := result.Regions.Lookup(0x10)
	assert.True(t, ok)
	assert.Equal(t, program.Data, class)
	assert.Len(t, result.Instructions, 3)
}

func TestRun_Cancelled(t *testing.T) {
	p := New(log.NewTestLogger(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Run(ctx, Input{
		Data:   testROM(),
		Mode:   mapper.LoROM,
		Tracer: options.NewTracer(),
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_EmptyImage(t *testing.T) {
	p := New(log.NewTestLogger(t))

	_, err := p.Run(context.Background(), Input{
		Data:   nil,
		Mode:   mapper.LoROM,
		Tracer: options.NewTracer(),
	})
	assert.ErrorIs(t, err, mapper.ErrOutOfRange)
}

//nolint:funlen // test functions can be long
func TestExecute(t *testing.T) {
	dir := t.TempDir()
	romFile := filepath.Join(dir, "game.sfc")
	withHeader := append(make([]byte, 512), testROM()...)
	assert.NoError(t, os.WriteFile(romFile, withHeader, 0o600))

	p := New(log.NewTestLogger(t))

	t.Run("execute with verification", func(t *testing.T) {
		opts := options.Program{
			Parameters: options.Parameters{Input: romFile},
			Flags:      options.Flags{Mode: "lorom", Verify: true},
		}

		result, err := p.Execute(context.Background(), opts, options.Tracer{Workers: 4})
		assert.NoError(t, err)
		assert.Equal(t, 0x8000, result.RomSize)
		assert.Len(t, result.Labels, 2)
	})

	t.Run("execute with hint file", func(t *testing.T) {
		hintFile := filepath.Join(dir, "game.yaml")
		assert.NoError(t, os.WriteFile(hintFile, []byte(`
entry_points:
  - {address: "$00:8020", name: Unused}
`), 0o600))
		opts := options.Program{
			Parameters: options.Parameters{Input: romFile, Hints: hintFile},
			Flags:      options.Flags{Mode: "lorom", Quiet: true},
		}

		result, err := p.Execute(context.Background(), opts, options.NewTracer())
		assert.NoError(t, err)
		label, ok := result.LabelAt(0x008020)
		assert.True(t, ok)
		assert.Equal(t, "Unused", label.Name)
	})

	t.Run("invalid mode", func(t *testing.T) {
		opts := options.Program{
			Parameters: options.Parameters{Input: romFile},
			Flags:      options.Flags{Mode: "exhirom"},
		}

		_, err := p.Execute(context.Background(), opts, options.NewTracer())
		assert.Error(t, err)
	})

	t.Run("non-existent file", func(t *testing.T) {
		opts := options.Program{
			Parameters: options.Parameters{Input: filepath.Join(dir, "missing.sfc")},
			Flags:      options.Flags{Mode: "lorom"},
		}

		_, err := p.Execute(context.Background(), opts, options.NewTracer())
		assert.Error(t, err)
	})
}

func TestExecute_VerifyLogsOnce(t *testing.T) {
	dir := t.TempDir()
	romFile := filepath.Join(dir, "game.sfc")
	assert.NoError(t, os.WriteFile(romFile, testROM(), 0o600))
	hintFile := filepath.Join(dir, "game.yaml")
	assert.NoError(t, os.WriteFile(hintFile, []byte(`
entry_points:
  - {address: "$7E:0000"}
`), 0o600))

	var buf bytes.Buffer
	cfg := log.DefaultConfig()
	cfg.Output = &buf
	cfg.TimeFormat = "-"
	p := New(log.NewWithConfig(cfg))

	opts := options.Program{
		Parameters: options.Parameters{Input: romFile, Hints: hintFile},
		Flags:      options.Flags{Mode: "lorom", Verify: true, Quiet: true},
	}
	result, err := p.Execute(context.Background(), opts, options.Tracer{Workers: 4})
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Report.Count(program.InvalidHint))

	output := buf.String()
	assert.Equal(t, 1, strings.Count(output, "Ignoring invalid hint"))
	assert.Equal(t, 1, strings.Count(output, "Segmentation finished"))
	assert.Equal(t, 1, strings.Count(output, "Verification successful"))
}
