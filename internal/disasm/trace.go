package disasm

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/retroenv/retrogolib/set"
	"github.com/retroenv/snesgodisasm/internal/arch/m65816"
	"github.com/retroenv/snesgodisasm/internal/program"
)

// Decoded is an instruction shape found at a ROM offset together with all
// states it was decoded under.
type Decoded struct {
	Offset      int
	Offsets     []int           // ROM offsets of all instruction bytes, starting with Offset
	Address     program.Address // canonical address
	Instruction m65816.Instruction
	States      []m65816.State
}

// Trace is the result of tracing a ROM image. All slices are sorted.
type Trace struct {
	Instructions []Decoded        // sorted by offset and length
	Ambiguous    []int            // ROM offsets of ambiguous bytes
	Tables       []program.Region // pointer tables read from ROM
	Xrefs        []program.Xref
	Vectors      map[program.Address]string // canonical handler address to vector name
	Report       program.Report
}

// At returns all instruction shapes decoded at the ROM offset.
func (t *Trace) At(offset int) []Decoded {
	start, _ := slices.BinarySearchFunc(t.Instructions, offset, func(d Decoded, offset int) int {
		return cmp.Compare(d.Offset, offset)
	})

	var result []Decoded
	for i := start; i < len(t.Instructions) && t.Instructions[i].Offset == offset; i++ {
		result = append(result, t.Instructions[i])
	}
	return result
}

func compareStates(a, b m65816.State) int {
	return cmp.Compare(stateIndex(a), stateIndex(b))
}

func stateIndex(s m65816.State) int {
	i := 0
	if s.Acc16 {
		i |= 1
	}
	if s.Idx16 {
		i |= 2
	}
	return i
}

// finalize detects the boundary conflicts and converts the accumulated data
// into a sorted trace. It is called after all workers exited.
func (dis *Disasm) finalize() *Trace {
	trace := &Trace{
		Vectors: dis.vectors,
	}

	for offset, byLength := range dis.visits {
		for _, v := range byLength {
			address, err := dis.image.Canonical(v.ins.Address)
			if err != nil {
				address = v.ins.Address
			}
			trace.Instructions = append(trace.Instructions, Decoded{
				Offset:      offset,
				Offsets:     dis.byteOffsets(v.ins),
				Address:     address,
				Instruction: v.ins,
				States:      set.SortedFunc(v.states, compareStates),
			})
		}
	}
	slices.SortFunc(trace.Instructions, func(a, b Decoded) int {
		if c := cmp.Compare(a.Offset, b.Offset); c != 0 {
			return c
		}
		return cmp.Compare(a.Instruction.Size, b.Instruction.Size)
	})

	dis.boundaryConflicts(trace.Instructions)

	trace.Ambiguous = set.Sorted(dis.ambiguous)

	trace.Tables = slices.Clone(dis.tables)
	slices.SortFunc(trace.Tables, func(a, b program.Region) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.End, b.End)
	})
	trace.Tables = slices.CompactFunc(trace.Tables, func(a, b program.Region) bool {
		return a.Start == b.Start && a.End == b.End
	})

	trace.Xrefs = program.SortXrefs(dis.xrefs)

	trace.Report.Conflicts = dis.conflicts
	trace.Report.Sort()
	trace.Report.Conflicts = slices.CompactFunc(trace.Report.Conflicts, func(a, b program.Conflict) bool {
		return a.Address == b.Address && a.Kind == b.Kind && a.Reason == b.Reason
	})

	steps := int(dis.steps.Load())
	if dis.options.MaxSteps > 0 {
		steps = min(steps, dis.options.MaxSteps)
	}
	trace.Report.Steps = steps
	trace.Report.Nodes = dis.visited.size()
	trace.Report.Truncated = dis.truncationReason != ""
	trace.Report.TruncationReason = dis.truncationReason
	return trace
}

// boundaryConflicts reports offsets that were decoded with different lengths
// and instructions that start inside another instruction. The bytes of all
// involved instructions are marked as ambiguous.
func (dis *Disasm) boundaryConflicts(instructions []Decoded) {
	for i := 0; i < len(instructions); {
		j := i + 1
		for j < len(instructions) && instructions[j].Offset == instructions[i].Offset {
			j++
		}

		if j-i > 1 {
			candidates := make([]string, 0, j-i)
			for _, d := range instructions[i:j] {
				for _, state := range d.States {
					candidates = append(candidates, fmt.Sprintf("%s length %d", state, d.Instruction.Size))
				}
				dis.markAmbiguous(d.Offsets...)
			}
			dis.conflicts = append(dis.conflicts, program.Conflict{
				Address:    instructions[i].Address,
				Kind:       program.WidthConflict,
				Reason:     "instruction decoded with different lengths",
				Candidates: candidates,
			})
		}
		i = j
	}

	// ROM offset to the instructions that cover it with a byte other than their first
	covering := map[int][]int{}
	for i, d := range instructions {
		for _, offset := range d.Offsets[1:] {
			covering[offset] = append(covering[offset], i)
		}
	}

	for _, inner := range instructions {
		for _, i := range covering[inner.Offset] {
			outer := instructions[i]
			if inner.Offset == outer.Offset {
				continue
			}

			dis.markAmbiguous(outer.Offsets...)
			dis.markAmbiguous(inner.Offsets...)
			dis.conflicts = append(dis.conflicts, program.Conflict{
				Address: inner.Address,
				Kind:    program.OverlappingInstruction,
				Reason: fmt.Sprintf("instruction starts inside '%s' at %s",
					outer.Instruction.String(), outer.Address),
				Candidates: []string{
					fmt.Sprintf("code at %s", outer.Address),
					fmt.Sprintf("code at %s", inner.Address),
				},
			})
		}
	}
}
