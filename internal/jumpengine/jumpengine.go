// Package jumpengine resolves indirect control transfers and dispatcher
// calls from jump table hints.
package jumpengine

import (
	"errors"
	"fmt"
	"slices"

	"github.com/retroenv/snesgodisasm/internal/arch/m65816"
	"github.com/retroenv/snesgodisasm/internal/hints"
	"github.com/retroenv/snesgodisasm/internal/mapper"
	"github.com/retroenv/snesgodisasm/internal/program"
)

var (
	// ErrUnresolved is returned for indirect transfers that have no jump table hint.
	ErrUnresolved = errors.New("indirect transfer without jump table hint")
	// ErrNoEntryCount is returned for dispatcher calls that have no hinted table size.
	ErrNoEntryCount = errors.New("dispatcher call without jump table entry count")
)

// pointer sizes of table entries in bytes.
const (
	shortEntrySize = 2
	longEntrySize  = 3
)

// Target is a resolved control flow target with the state it is executed with.
type Target struct {
	Address program.Address
	State   m65816.State
}

// Table is the result of resolving a jump table.
type Table struct {
	Site    program.Address
	Targets []Target

	// Data is the ROM range of the pointer table, empty for explicit targets.
	Data        program.Region
	HasData     bool
	SkippedNull int // number of zero entries that were skipped
	Excluded    int // number of entries that the hint excludes
}

// JumpEngine resolves jump tables against a ROM image. It is safe for
// concurrent use as it only reads the image and the hints.
type JumpEngine struct {
	image *mapper.Image
	hints *hints.Set
}

// New returns a jump engine for the image and validated hints. A nil set
// is treated as an empty one.
func New(image *mapper.Image, set *hints.Set) *JumpEngine {
	if set == nil {
		set = &hints.Set{}
	}
	return &JumpEngine{
		image: image,
		hints: set,
	}
}

// Dispatcher returns the dispatcher hint for the call target.
func (j *JumpEngine) Dispatcher(target program.Address) (hints.Dispatcher, bool) {
	offset, err := j.image.Offset(target)
	if err != nil {
		return hints.Dispatcher{}, false
	}
	return j.hints.Dispatcher(offset)
}

// Resolve returns the targets of the indirect jump or call instruction. The
// state is used for targets whose hint does not state one.
func (j *JumpEngine) Resolve(ins m65816.Instruction, state m65816.State) (Table, error) {
	offset, err := j.image.Offset(ins.Address)
	if err != nil {
		return Table{}, fmt.Errorf("mapping jump site: %w", err)
	}
	hint, ok := j.hints.JumpTable(offset)
	if !ok || (len(hint.Targets) == 0 && hint.Table == 0) {
		return Table{}, ErrUnresolved
	}
	if hint.State != nil {
		state = *hint.State
	}

	table := Table{Site: ins.Address}
	if len(hint.Targets) > 0 {
		for _, address := range hint.Targets {
			j.addTarget(&table, hint, address, state)
		}
		return table, nil
	}

	bank := ins.Address.Bank()
	if err := j.readTable(&table, hint, hint.Table, bank, hint.Long, state); err != nil {
		return Table{}, err
	}
	return table, nil
}

// Dispatch returns the targets of the inline pointer table that follows a
// call to a dispatcher. The entry count is taken from the jump table hint
// of the call site.
func (j *JumpEngine) Dispatch(call m65816.Instruction, dispatcher hints.Dispatcher) (Table, error) {
	offset, err := j.image.Offset(call.Address)
	if err != nil {
		return Table{}, fmt.Errorf("mapping dispatcher call: %w", err)
	}
	hint, ok := j.hints.JumpTable(offset)
	if !ok || hint.Entries <= 0 {
		return Table{}, ErrNoEntryCount
	}

	state := dispatcher.State
	if hint.State != nil {
		state = *hint.State
	}

	table := Table{Site: call.Address}
	start := call.Next()
	if err := j.readTable(&table, hint, start, start.Bank(), dispatcher.Long, state); err != nil {
		return Table{}, err
	}
	return table, nil
}

// addTarget adds the target to the table unless the hint excludes it.
func (j *JumpEngine) addTarget(table *Table, hint hints.JumpTable, target program.Address, state m65816.State) {
	if offset, err := j.image.Offset(target); err == nil && slices.Contains(hint.Exclude, offset) {
		table.Excluded++
		return
	}
	table.Targets = append(table.Targets, Target{Address: target, State: state})
}

// readTable reads the pointer table entries from ROM. Short entries
// point into the given bank. Zero entries mark unused slots and are skipped.
func (j *JumpEngine) readTable(table *Table, hint hints.JumpTable, address program.Address, bank uint8,
	long bool, state m65816.State) error {

	entries := hint.Entries
	entrySize := shortEntrySize
	kind := program.JumpTableData
	if long {
		entrySize = longEntrySize
		kind = program.JumpTableLongData
	}

	start, err := j.image.Offset(address)
	if err != nil {
		return fmt.Errorf("mapping jump table: %w", err)
	}
	data, err := j.image.Bytes(address, entries*entrySize)
	if err != nil {
		return fmt.Errorf("reading jump table at %s: %w", address, err)
	}

	for i := range entries {
		entry := data[i*entrySize:]

		var target program.Address
		var null bool
		if long {
			target = program.Address(uint32(entry[2])<<16 | uint32(entry[1])<<8 | uint32(entry[0]))
			null = target == 0
		} else {
			target = program.NewAddress(bank, uint16(entry[1])<<8|uint16(entry[0]))
			null = target.Offset() == 0
		}

		if null {
			table.SkippedNull++
			continue
		}
		j.addTarget(table, hint, target, state)
	}

	table.Data = program.Region{
		Start:   start,
		End:     start + len(data),
		Address: address,
		Class:   program.Data,
		Kind:    kind,
	}
	table.HasData = true
	return nil
}
