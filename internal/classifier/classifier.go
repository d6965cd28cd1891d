// Package classifier merges the trace results and hints into the final
// region map of the ROM image.
package classifier

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/snesgodisasm/internal/disasm"
	"github.com/retroenv/snesgodisasm/internal/hints"
	"github.com/retroenv/snesgodisasm/internal/mapper"
	"github.com/retroenv/snesgodisasm/internal/program"
)

// Classify derives the class of every ROM byte and merges them into regions.
// Hint ranges and pointer tables outrank the traced classification, every
// run of traced bytes that a hint changes is reported as a conflict.
func Classify(logger *log.Logger, image *mapper.Image, trace *disasm.Trace,
	hintSet *hints.Set) (program.RegionMap, []program.Conflict, error) {

	offsets := make([]program.OffsetType, image.Size())

	for _, d := range trace.Instructions {
		offsets[d.Offset].SetType(program.InstructionStart)
		for _, offset := range d.Offsets {
			offsets[offset].SetType(program.CodeOffset)
		}
	}
	for _, offset := range trace.Ambiguous {
		offsets[offset].SetType(program.AmbiguousOffset)
	}
	for _, rng := range hintSet.Regions {
		typ := program.HintCodeOffset
		if rng.Class == program.Data {
			typ = program.HintDataOffset
		}
		markRange(offsets, rng.Start, rng.End, typ)
	}
	for _, table := range trace.Tables {
		markRange(offsets, table.Start, table.End, program.HintDataOffset)
	}

	conflicts := overrides(logger, image.Mapper(), offsets)

	regions, err := merge(image.Mapper(), offsets, dataKinds(trace, hintSet, len(offsets)))
	if err != nil {
		return nil, nil, err
	}
	return regions, conflicts, nil
}

// dataKinds returns the content kind of every ROM offset. A kind given by a
// hint outranks the kind of a pointer table.
func dataKinds(trace *disasm.Trace, hintSet *hints.Set, size int) []program.DataKind {
	kinds := make([]program.DataKind, size)

	mark := func(start, end int, kind program.DataKind) {
		for offset := start; offset < end && offset < size; offset++ {
			kinds[offset] = kind
		}
	}
	for _, table := range trace.Tables {
		mark(table.Start, table.End, table.Kind)
	}
	for _, rng := range hintSet.Regions {
		if rng.Class == program.Data && rng.Kind != program.UnspecifiedData {
			mark(rng.Start, rng.End, rng.Kind)
		}
	}
	return kinds
}

func markRange(offsets []program.OffsetType, start, end int, typ program.OffsetType) {
	for offset := start; offset < end && offset < len(offsets); offset++ {
		offsets[offset].SetType(typ)
	}
}

// tracedClass returns the class of the offset without taking hints into account.
func tracedClass(typ program.OffsetType) program.Class {
	typ.ClearType(program.HintCodeOffset | program.HintDataOffset)
	return typ.Class()
}

// overrides reports every maximal run of traced code or ambiguous bytes that
// got a different class from a hint.
func overrides(logger *log.Logger, m *mapper.Mapper, offsets []program.OffsetType) []program.Conflict {
	var conflicts []program.Conflict

	overridden := func(typ program.OffsetType) bool {
		traced := tracedClass(typ)
		return (traced == program.Code || traced == program.Ambiguous) && typ.Class() != traced
	}

	for start := 0; start < len(offsets); {
		if !overridden(offsets[start]) {
			start++
			continue
		}

		traced := tracedClass(offsets[start])
		final := offsets[start].Class()
		end := start + 1
		for end < len(offsets) && overridden(offsets[end]) &&
			tracedClass(offsets[end]) == traced && offsets[end].Class() == final {
			end++
		}

		address, err := m.ToLinear(start)
		if err != nil {
			address = 0
		}
		reason := fmt.Sprintf("%s hint overrides traced %s for %d bytes", final, traced, end-start)
		logger.Info("Hint overrides traced classification",
			log.Stringer("address", address),
			log.Int("bytes", end-start),
			log.Stringer("traced", traced),
			log.Stringer("hint", final))

		conflicts = append(conflicts, program.Conflict{
			Address: address,
			Kind:    program.HintOverride,
			Reason:  reason,
		})
		start = end
	}
	return conflicts
}

// merge combines neighbouring offsets of the same class into regions. Data
// regions are also split where the content kind changes.
func merge(m *mapper.Mapper, offsets []program.OffsetType, kinds []program.DataKind) (program.RegionMap, error) {
	var regions program.RegionMap

	kindAt := func(offset int, class program.Class) program.DataKind {
		if class != program.Data {
			return program.UnspecifiedData
		}
		return kinds[offset]
	}

	for start := 0; start < len(offsets); {
		class := offsets[start].Class()
		kind := kindAt(start, class)
		end := start + 1
		for end < len(offsets) && offsets[end].Class() == class && kindAt(end, class) == kind {
			end++
		}

		address, err := m.ToLinear(start)
		if err != nil {
			return nil, fmt.Errorf("mapping region start: %w", err)
		}
		regions = append(regions, program.Region{
			Start:   start,
			End:     end,
			Address: address,
			Class:   class,
			Kind:    kind,
		})
		start = end
	}

	if err := regions.Validate(len(offsets)); err != nil {
		return nil, fmt.Errorf("validating region map: %w", err)
	}
	return regions, nil
}
