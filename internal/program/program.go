// Package program contains the result model of a segmentation run: the region map,
// decoded instructions, cross references, labels and the conflict report.
package program

// Instruction is a decoded instruction as it appears in the final listing.
type Instruction struct {
	Address Address  // canonical address of the first byte
	Offset  int      // ROM offset of the first byte
	Bytes   []byte   // opcode and operand bytes
	Text    string   // assembler notation
	States  []string // width states the instruction was decoded under
}

// Length returns the instruction length in bytes.
func (i Instruction) Length() int {
	return len(i.Bytes)
}

// Result is the complete outcome of tracing and classifying a ROM image.
type Result struct {
	Mode     string // mapping mode name
	RomSize  int
	Checksum uint32 // CRC32 of the ROM image

	Regions      RegionMap
	Instructions []Instruction
	Xrefs        []Xref
	Labels       []Label
	Report       Report
}

// LabelAt returns the label at the given address.
func (r *Result) LabelAt(address Address) (Label, bool) {
	for _, label := range r.Labels {
		if label.Address == address {
			return label, true
		}
	}
	return Label{}, false
}
