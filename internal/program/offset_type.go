package program

// OffsetType collects everything that is known about a single ROM offset
// before the final classification is derived from it.
type OffsetType uint8

// offset markers.
const (
	UnknownOffset    OffsetType = 0
	CodeOffset       OffsetType = 1 << iota // part of a traced instruction
	InstructionStart                        // first byte of a traced instruction
	AmbiguousOffset                         // conflicting boundaries or unresolved control flow
	HintCodeOffset                          // declared as code by a hint
	HintDataOffset                          // declared as data by a hint
)

// IsType returns whether the offset has all bits of the given type set.
func (o OffsetType) IsType(typ OffsetType) bool {
	return o&typ == typ && typ != 0
}

// SetType sets the type bits.
func (o *OffsetType) SetType(typ OffsetType) {
	*o |= typ
}

// ClearType unsets the type bits.
func (o *OffsetType) ClearType(typ OffsetType) {
	*o &^= typ
}

// Class returns the final classification of an offset, hints outrank traced
// inference and data hints outrank code hints.
func (o OffsetType) Class() Class {
	switch {
	case o.IsType(HintDataOffset):
		return Data
	case o.IsType(HintCodeOffset):
		return Code
	case o.IsType(AmbiguousOffset):
		return Ambiguous
	case o.IsType(CodeOffset):
		return Code
	default:
		return Unknown
	}
}
