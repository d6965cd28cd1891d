package symbols

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/snesgodisasm/internal/disasm"
	"github.com/retroenv/snesgodisasm/internal/hints"
	"github.com/retroenv/snesgodisasm/internal/mapper"
	"github.com/retroenv/snesgodisasm/internal/program"
)

var generatedNameFormats = map[program.LabelKind]string{
	program.BranchTarget: "_label_%06x",
	program.Subroutine:   "_func_%06x",
	program.Vector:       "_vector_%06x",
	program.DataBlock:    "_data_%06x",
}

// kindRank orders the label kinds that are derived from cross references,
// a higher rank replaces a lower one.
var kindRank = map[program.LabelKind]int{
	program.DataBlock:    0,
	program.BranchTarget: 1,
	program.Subroutine:   2,
	program.Vector:       3,
}

type assigner struct {
	logger *log.Logger
	image  *mapper.Image
	trace  *disasm.Trace
	hints  *hints.Set

	labels *Manager[*program.Label]
	names  map[string]program.Address
}

// Assign derives the labels of all referenced addresses of the trace. Every
// label is keyed by the canonical address, the result is sorted by address
// and every name is unique.
func Assign(logger *log.Logger, trace *disasm.Trace, hintSet *hints.Set, image *mapper.Image) []program.Label {
	a := &assigner{
		logger: logger,
		image:  image,
		trace:  trace,
		hints:  hintSet,
		labels: New[*program.Label](),
		names:  map[string]program.Address{},
	}

	a.collectXrefs()
	a.collectEntryPoints()
	a.collectData()
	a.assignNames()

	for _, bank := range a.labels.Banks() {
		logger.Debug("Labels assigned",
			log.Hex("bank", bank.Number()),
			log.Int("labels", bank.Len()))
	}

	sorted := a.labels.Sorted()
	labels := make([]program.Label, 0, len(sorted))
	for _, label := range sorted {
		labels = append(labels, *label)
	}
	return labels
}

func (a *assigner) collectXrefs() {
	for _, xref := range a.trace.Xrefs {
		if !xref.Resolved() {
			continue
		}
		address, err := a.image.Canonical(xref.To)
		if err != nil {
			continue // targets outside of ROM like RAM routines
		}

		kind := program.BranchTarget
		switch xref.Kind {
		case program.XrefInterruptVector:
			kind = program.Vector
		case program.XrefCall, program.XrefJumpTable:
			kind = program.Subroutine
		}

		label := a.label(address, kind)
		label.Provenance = append(label.Provenance, xref)
	}
}

func (a *assigner) collectEntryPoints() {
	for _, ep := range a.hints.EntryPoints {
		address, err := a.image.Canonical(ep.Address)
		if err != nil {
			continue
		}
		a.label(address, program.Subroutine)
	}
}

// collectData adds data block labels for data hint ranges and pointer
// tables that are not already labeled as code. The kind of a data hint
// outranks the kind of a pointer table at the same address.
func (a *assigner) collectData() {
	type block struct {
		start program.Address
		kind  program.DataKind
	}
	var blocks []block
	for _, table := range a.trace.Tables {
		blocks = append(blocks, block{start: table.Address, kind: table.Kind})
	}
	for _, rng := range a.hints.Data {
		blocks = append(blocks, block{start: rng.Address, kind: rng.Kind})
	}

	for _, b := range blocks {
		address, err := a.image.Canonical(b.start)
		if err != nil {
			continue
		}
		label := a.label(address, program.DataBlock)
		if label.Kind == program.DataBlock && b.kind != program.UnspecifiedData {
			label.DataKind = b.kind
		}
	}
}

// label returns the label at the address, creating it if necessary. The kind
// of an existing label is raised to the given kind if it ranks higher.
func (a *assigner) label(address program.Address, kind program.LabelKind) *program.Label {
	label, ok := a.labels.Get(address)
	if !ok {
		label = &program.Label{
			Address: address,
			Kind:    kind,
		}
		a.labels.Set(address, label)
		return label
	}

	if kindRank[kind] > kindRank[label.Kind] {
		label.Kind = kind
	}
	return label
}

// assignNames names the labels in three passes so that vector names take
// precedence over hint names, which take precedence over generated names.
func (a *assigner) assignNames() {
	labels := a.labels.Sorted()

	for _, label := range labels {
		if name, ok := a.trace.Vectors[label.Address]; ok && label.Kind == program.Vector {
			a.claim(label, name)
		}
	}

	for _, label := range labels {
		if label.Name != "" {
			continue
		}
		if name, ok := a.hints.Name(label.Address); ok {
			a.claim(label, name)
		}
	}

	for _, label := range labels {
		if label.Name != "" {
			continue
		}
		name := fmt.Sprintf(generatedNameFormats[label.Kind], uint32(label.Address))
		for i := 1; a.taken(name, label.Address); i++ {
			name = fmt.Sprintf(generatedNameFormats[label.Kind]+"_%d", uint32(label.Address), i)
		}
		a.setName(label, name)
	}
}

// claim assigns a custom name to the label. A name that is already used by
// another address is rejected and the label keeps no name, so that it gets
// a generated one.
func (a *assigner) claim(label *program.Label, name string) {
	if a.taken(name, label.Address) {
		a.logger.Warn("Label name already in use, using generated name",
			log.String("name", name),
			log.Stringer("address", label.Address),
			log.Stringer("used_by", a.names[name]))
		return
	}
	a.setName(label, name)
}

func (a *assigner) taken(name string, address program.Address) bool {
	owner, ok := a.names[name]
	return ok && owner != address
}

func (a *assigner) setName(label *program.Label, name string) {
	label.Name = name
	a.names[name] = label.Address
}
