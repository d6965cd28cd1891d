package hints

import (
	"fmt"
	"slices"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/snesgodisasm/internal/arch/m65816"
	"github.com/retroenv/snesgodisasm/internal/mapper"
	"github.com/retroenv/snesgodisasm/internal/program"
)

// EntryPoint is a validated entry point hint.
type EntryPoint struct {
	Address program.Address
	Name    string
	State   m65816.State
}

// Range is a validated range of ROM offsets, End is exclusive.
type Range struct {
	Start   int
	End     int
	Address program.Address // CPU address of the start as written in the hint file
	Name    string
	Class   program.Class
	State   m65816.State     // state code ranges are traced with
	Kind    program.DataKind // content of data ranges

	position position
}

// Len returns the number of bytes in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

func (r Range) overlaps(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}

// JumpTable is a validated jump table hint.
type JumpTable struct {
	Site    program.Address
	Targets []program.Address // explicit targets
	Table   program.Address   // address of the pointer table in ROM if no explicit targets are set
	Entries int
	Long    bool
	State   *m65816.State // state of the targets, nil to keep the state at the site
	Exclude []int         // ROM offsets of entries that are not followed
}

// Dispatcher is a validated dispatcher hint.
type Dispatcher struct {
	Address program.Address
	Name    string
	Long    bool
	State   m65816.State
}

// Set contains all validated hints. The zero value is an empty set.
type Set struct {
	EntryPoints []EntryPoint
	Code        []Range // code hint ranges as written
	Data        []Range // data hint ranges as written
	Regions     []Range // non overlapping ranges after resolving overlaps, sorted by start
	Conflicts   []program.Conflict

	names       map[program.Address]string // canonical address to name
	jumpTables  map[int]JumpTable          // by ROM offset of the site
	dispatchers map[int]Dispatcher         // by ROM offset of the subroutine
}

// JumpTable returns the jump table hint for the site at the ROM offset.
func (s *Set) JumpTable(offset int) (JumpTable, bool) {
	table, ok := s.jumpTables[offset]
	return table, ok
}

// Dispatcher returns the dispatcher hint for the subroutine at the ROM offset.
func (s *Set) Dispatcher(offset int) (Dispatcher, bool) {
	dispatcher, ok := s.dispatchers[offset]
	return dispatcher, ok
}

// Name returns the hint name for the canonical address.
func (s *Set) Name(address program.Address) (string, bool) {
	name, ok := s.names[address]
	return name, ok
}

// Names returns all named canonical addresses in ascending order.
func (s *Set) Names() []program.Address {
	addresses := make([]program.Address, 0, len(s.names))
	for address := range s.names {
		addresses = append(addresses, address)
	}
	slices.Sort(addresses)
	return addresses
}

type resolver struct {
	logger *log.Logger
	mapper *mapper.Mapper
	set    *Set
}

// Resolve validates the hints against the address mapping. Invalid entries
// are dropped and reported as conflicts of the set.
func (f *File) Resolve(logger *log.Logger, m *mapper.Mapper) *Set {
	r := &resolver{
		logger: logger,
		mapper: m,
		set: &Set{
			names:       map[program.Address]string{},
			jumpTables:  map[int]JumpTable{},
			dispatchers: map[int]Dispatcher{},
		},
	}

	for i, entry := range f.EntryPoints {
		r.entryPoint(i, entry)
	}
	for i, entry := range f.Code {
		r.addRange("code", i, entry, program.Code)
	}
	for i, entry := range f.Data {
		r.addRange("data", i, entry, program.Data)
	}
	for i, entry := range f.JumpTables {
		r.jumpTable(i, entry)
	}
	for i, entry := range f.Dispatchers {
		r.dispatcher(i, entry)
	}

	r.resolveRegions()
	return r.set
}

func (r *resolver) invalid(err *InvalidHintError, address program.Address) {
	r.logger.Warn("Ignoring invalid hint", log.Err(err))
	r.set.Conflicts = append(r.set.Conflicts, program.Conflict{
		Address: address,
		Kind:    program.InvalidHint,
		Reason:  err.Error(),
	})
}

// address parses and maps an address field. It returns the parsed address and
// its ROM offset.
func (r *resolver) address(section string, index int, field, value string) (program.Address, int, bool) {
	address, err := program.ParseAddress(value)
	if err != nil {
		r.invalid(&InvalidHintError{Section: section, Index: index, Field: field, Value: value, Err: err}, 0)
		return 0, 0, false
	}

	offset, err := r.mapper.ToRomOffset(address)
	if err != nil {
		r.invalid(&InvalidHintError{Section: section, Index: index, Field: field, Value: value,
			Err: fmt.Errorf("%w: %w", errUnmapped, err)}, address)
		return 0, 0, false
	}
	return address, offset, true
}

func (r *resolver) state(section string, index int, value string) (m65816.State, bool) {
	state, err := m65816.ParseState(value)
	if err != nil {
		r.invalid(&InvalidHintError{Section: section, Index: index, Field: "state", Value: value, Err: err}, 0)
		return m65816.State{}, false
	}
	return state, true
}

// setName records the name of the ROM offset, a later hint replaces the name.
func (r *resolver) setName(offset int, name string) {
	if name == "" {
		return
	}
	canonical, err := r.mapper.ToLinear(offset)
	if err != nil {
		return
	}
	if previous, ok := r.set.names[canonical]; ok && previous != name {
		r.logger.Debug("Hint name replaced",
			log.Stringer("address", canonical),
			log.String("previous", previous),
			log.String("name", name))
	}
	r.set.names[canonical] = name
}

func (r *resolver) entryPoint(index int, entry EntryPointEntry) {
	address, offset, ok := r.address("entry_points", index, "address", entry.Address)
	if !ok {
		return
	}

	ep := EntryPoint{
		Address: address,
		Name:    entry.Name,
		State:   m65816.State{Acc16: entry.M16, Idx16: entry.X16},
	}

	for i, existing := range r.set.EntryPoints {
		existingOffset, err := r.mapper.ToRomOffset(existing.Address)
		if err != nil || existingOffset != offset {
			continue
		}
		r.overlap(address, fmt.Sprintf("entry point %s duplicates %s, using the later entry", address, existing.Address))
		r.set.EntryPoints[i] = ep
		r.setName(offset, ep.Name)
		return
	}

	r.set.EntryPoints = append(r.set.EntryPoints, ep)
	r.setName(offset, ep.Name)
}

func (r *resolver) addRange(section string, index int, entry RangeEntry, class program.Class) {
	start, startOffset, ok := r.address(section, index, "start", entry.Start)
	if !ok {
		return
	}
	_, endOffset, ok := r.address(section, index, "end", entry.End)
	if !ok {
		return
	}
	if endOffset < startOffset {
		r.invalid(&InvalidHintError{Section: section, Index: index, Field: "end", Value: entry.End,
			Err: errEndBeforeStart}, start)
		return
	}
	state, ok := r.state(section, index, entry.State)
	if !ok {
		return
	}
	kind, ok := r.dataKind(section, index, entry, class, start)
	if !ok {
		return
	}

	rng := Range{
		Start:    startOffset,
		End:      endOffset + 1,
		Address:  start,
		Name:     entry.Name,
		Class:    class,
		State:    state,
		Kind:     kind,
		position: entry.position,
	}
	if class == program.Code {
		r.set.Code = append(r.set.Code, rng)
	} else {
		r.set.Data = append(r.set.Data, rng)
	}
	r.setName(startOffset, entry.Name)
}

// dataKind parses the kind of a range, only data ranges can have a kind.
func (r *resolver) dataKind(section string, index int, entry RangeEntry, class program.Class,
	start program.Address) (program.DataKind, bool) {

	if entry.Kind == "" {
		return program.UnspecifiedData, true
	}
	if class != program.Data {
		r.invalid(&InvalidHintError{Section: section, Index: index, Field: "kind", Value: entry.Kind,
			Err: errKindOnCode}, start)
		return program.UnspecifiedData, false
	}

	kind, err := program.ParseDataKind(entry.Kind)
	if err != nil {
		r.invalid(&InvalidHintError{Section: section, Index: index, Field: "kind", Value: entry.Kind, Err: err}, start)
		return program.UnspecifiedData, false
	}
	return kind, true
}

func (r *resolver) jumpTable(index int, entry JumpTableEntry) {
	const section = "jump_tables"

	site, siteOffset, ok := r.address(section, index, "site", entry.Site)
	if !ok {
		return
	}

	table := JumpTable{
		Site:    site,
		Entries: entry.Entries,
		Long:    entry.Long,
	}

	if entry.State != "" {
		state, ok := r.state(section, index, entry.State)
		if !ok {
			return
		}
		table.State = &state
	}

	switch {
	case len(entry.Targets) > 0 && entry.Table != "":
		r.invalid(&InvalidHintError{Section: section, Index: index, Field: "table", Value: entry.Table,
			Err: errTableAndTargets}, site)
		return

	case len(entry.Targets) > 0:
		for i, value := range entry.Targets {
			target, _, ok := r.address(section, index, fmt.Sprintf("targets[%d]", i), value)
			if ok {
				table.Targets = append(table.Targets, target)
			}
		}

	case entry.Table != "":
		address, _, ok := r.address(section, index, "table", entry.Table)
		if !ok {
			return
		}
		if entry.Entries <= 0 {
			r.invalid(&InvalidHintError{Section: section, Index: index, Field: "entries",
				Value: fmt.Sprint(entry.Entries), Err: errNoEntries}, site)
			return
		}
		table.Table = address

	default:
		// a dispatcher call site only needs the entry count
		if entry.Entries <= 0 {
			r.invalid(&InvalidHintError{Section: section, Index: index, Field: "entries",
				Value: fmt.Sprint(entry.Entries), Err: errTableAndTargets}, site)
			return
		}
	}

	for i, value := range entry.Exclude {
		if _, offset, ok := r.address(section, index, fmt.Sprintf("exclude[%d]", i), value); ok {
			table.Exclude = append(table.Exclude, offset)
		}
	}

	if _, ok := r.set.jumpTables[siteOffset]; ok {
		r.overlap(site, fmt.Sprintf("jump table site %s is hinted more than once, using the later entry", site))
	}
	r.set.jumpTables[siteOffset] = table
}

func (r *resolver) dispatcher(index int, entry DispatcherEntry) {
	const section = "dispatchers"

	address, offset, ok := r.address(section, index, "address", entry.Address)
	if !ok {
		return
	}
	state, ok := r.state(section, index, entry.State)
	if !ok {
		return
	}

	if _, ok := r.set.dispatchers[offset]; ok {
		r.overlap(address, fmt.Sprintf("dispatcher %s is hinted more than once, using the later entry", address))
	}
	r.set.dispatchers[offset] = Dispatcher{
		Address: address,
		Name:    entry.Name,
		Long:    entry.Long,
		State:   state,
	}
	r.setName(offset, entry.Name)
}

func (r *resolver) overlap(address program.Address, reason string) {
	r.logger.Info("Hint overlap", log.Stringer("address", address), log.String("reason", reason))
	r.set.Conflicts = append(r.set.Conflicts, program.Conflict{
		Address: address,
		Kind:    program.HintOverlap,
		Reason:  reason,
	})
}
