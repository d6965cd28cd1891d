package program

import (
	"cmp"
	"slices"
)

// XrefKind is the kind of control transfer recorded by a cross reference.
type XrefKind uint8

// cross reference kinds.
const (
	XrefCall XrefKind = iota + 1
	XrefBranch
	XrefJump
	XrefJumpTable
	XrefInterruptVector
	XrefIndirectUnresolved
)

var xrefKindNames = map[XrefKind]string{
	XrefCall:               "call",
	XrefBranch:             "branch",
	XrefJump:               "jump",
	XrefJumpTable:          "jump-table",
	XrefInterruptVector:    "interrupt-vector",
	XrefIndirectUnresolved: "indirect-unresolved",
}

func (k XrefKind) String() string {
	return xrefKindNames[k]
}

// Xref is a directed control flow edge. For unresolved indirect transfers
// the target is unknown and To is 0.
type Xref struct {
	From Address
	To   Address
	Kind XrefKind
}

// Resolved returns whether the target of the edge is known.
func (x Xref) Resolved() bool {
	return x.Kind != XrefIndirectUnresolved
}

// CompareXrefs orders cross references by target, source and kind.
func CompareXrefs(a, b Xref) int {
	if c := cmp.Compare(a.To, b.To); c != 0 {
		return c
	}
	if c := cmp.Compare(a.From, b.From); c != 0 {
		return c
	}
	return cmp.Compare(a.Kind, b.Kind)
}

// SortXrefs sorts and deduplicates the cross references.
func SortXrefs(xrefs []Xref) []Xref {
	slices.SortFunc(xrefs, CompareXrefs)
	return slices.Compact(xrefs)
}
