package program

// LabelKind describes why a label exists.
type LabelKind uint8

// label kinds.
const (
	BranchTarget LabelKind = iota
	Subroutine
	Vector
	DataBlock
)

var labelKindNames = map[LabelKind]string{
	BranchTarget: "branch-target",
	Subroutine:   "subroutine",
	Vector:       "vector",
	DataBlock:    "data-block",
}

func (k LabelKind) String() string {
	return labelKindNames[k]
}

// Label is a name assigned to an address.
type Label struct {
	Name       string
	Address    Address
	Kind       LabelKind
	DataKind   DataKind // content of a data block
	Provenance []Xref   // cross references that justify the label
}
