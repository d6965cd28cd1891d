package classifier

import (
	"slices"

	"github.com/retroenv/retrogolib/set"
	"github.com/retroenv/snesgodisasm/internal/arch/m65816"
	"github.com/retroenv/snesgodisasm/internal/disasm"
	"github.com/retroenv/snesgodisasm/internal/hints"
	"github.com/retroenv/snesgodisasm/internal/program"
)

// Instructions returns the confirmed instructions of the code regions, at
// most one per offset. Decodes with bytes outside of code regions and decodes
// that start inside an already confirmed instruction are dropped. If a code
// hint made several decodes of one offset code, the one decoded under the
// state of the hint is kept, otherwise the shortest.
func Instructions(trace *disasm.Trace, regions program.RegionMap, hintSet *hints.Set) []program.Instruction {
	var result []program.Instruction
	covered := set.New[int]() // ROM offsets of the confirmed instruction bytes

	for i := 0; i < len(trace.Instructions); {
		offset := trace.Instructions[i].Offset
		j := i + 1
		for j < len(trace.Instructions) && trace.Instructions[j].Offset == offset {
			j++
		}
		group := trace.Instructions[i:j]
		i = j

		if covered.Contains(offset) {
			continue
		}

		var candidates []disasm.Decoded
		for _, d := range group {
			if isCode(regions, d.Offsets) && !overlaps(covered, d.Offsets) {
				candidates = append(candidates, d)
			}
		}
		if len(candidates) == 0 {
			continue
		}

		d := candidates[0]
		if state, ok := hintState(hintSet, offset); ok {
			for _, candidate := range candidates {
				if slices.Contains(candidate.States, state) {
					d = candidate
					break
				}
			}
		}

		result = append(result, convert(d))
		for _, offset := range d.Offsets {
			covered.Add(offset)
		}
	}
	return result
}

func isCode(regions program.RegionMap, offsets []int) bool {
	if len(offsets) == 0 {
		return false
	}
	for _, offset := range offsets {
		class, ok := regions.Lookup(offset)
		if !ok || class != program.Code {
			return false
		}
	}
	return true
}

func overlaps(covered set.Set[int], offsets []int) bool {
	return slices.ContainsFunc(offsets, covered.Contains)
}

// hintState returns the state of the code hint range that contains the offset.
func hintState(hintSet *hints.Set, offset int) (m65816.State, bool) {
	for _, rng := range hintSet.Code {
		if offset >= rng.Start && offset < rng.End {
			return rng.State, true
		}
	}
	return m65816.State{}, false
}

func convert(d disasm.Decoded) program.Instruction {
	states := make([]string, 0, len(d.States))
	for _, state := range d.States {
		states = append(states, state.String())
	}

	return program.Instruction{
		Address: d.Address,
		Offset:  d.Offset,
		Bytes:   d.Instruction.Encode(),
		Text:    d.Instruction.String(),
		States:  states,
	}
}
