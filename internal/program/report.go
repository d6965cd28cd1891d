package program

import (
	"cmp"
	"slices"
)

// ConflictKind is the reason category of a report entry.
type ConflictKind uint8

// conflict kinds.
const (
	WidthConflict ConflictKind = iota + 1
	OverlappingInstruction
	HintOverride
	HintOverlap
	UnresolvedIndirect
	DecodeFailure
	MappingFailure
	InvalidHint
)

var conflictKindNames = map[ConflictKind]string{
	WidthConflict:          "width-conflict",
	OverlappingInstruction: "overlapping-instruction",
	HintOverride:           "hint-override",
	HintOverlap:            "hint-overlap",
	UnresolvedIndirect:     "unresolved-indirect",
	DecodeFailure:          "decode-failure",
	MappingFailure:         "mapping-failure",
	InvalidHint:            "invalid-hint",
}

func (k ConflictKind) String() string {
	return conflictKindNames[k]
}

// Conflict is an entry of the conflict and ambiguity report.
type Conflict struct {
	Address    Address
	Kind       ConflictKind
	Reason     string
	Candidates []string // possible resolutions for a user supplied hint
}

// Report collects everything that needs manual attention.
type Report struct {
	Conflicts []Conflict

	Truncated        bool   // tracing stopped before the worklist drained
	TruncationReason string
	Steps            int    // number of expanded trace nodes
	Nodes            int    // number of distinct (address, state) nodes
}

// Add appends conflicts to the report.
func (r *Report) Add(conflicts ...Conflict) {
	r.Conflicts = append(r.Conflicts, conflicts...)
}

// Count returns the number of conflicts of the given kind.
func (r *Report) Count(kind ConflictKind) int {
	n := 0
	for _, c := range r.Conflicts {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Sort orders the conflicts by address, kind and reason.
func (r *Report) Sort() {
	slices.SortStableFunc(r.Conflicts, func(a, b Conflict) int {
		if c := cmp.Compare(a.Address, b.Address); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
			return c
		}
		return cmp.Compare(a.Reason, b.Reason)
	})
}
