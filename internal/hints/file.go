// Package hints loads and validates the user supplied hint file that guides
// the tracer and overrides the classification.
package hints

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the raw content of a hint file.
type File struct {
	EntryPoints []EntryPointEntry `yaml:"entry_points"`
	Code        []RangeEntry      `yaml:"code"`
	Data        []RangeEntry      `yaml:"data"`
	JumpTables  []JumpTableEntry  `yaml:"jump_tables"`
	Dispatchers []DispatcherEntry `yaml:"dispatchers"`
}

// EntryPointEntry marks an address as code that is executed in the given state.
type EntryPointEntry struct {
	Address string `yaml:"address"`
	Name    string `yaml:"name"`
	M16     bool   `yaml:"m16"`
	X16     bool   `yaml:"x16"`
}

// RangeEntry is an inclusive address range.
type RangeEntry struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"` // inclusive
	Name  string `yaml:"name"`
	State string `yaml:"state"` // state code ranges are traced with, m8x8 if empty
	Kind  string `yaml:"kind"`  // content of data ranges, for example graphics

	position position
}

// JumpTableEntry resolves the targets of an indirect jump or of a dispatcher
// call site. Targets are either listed explicitly or read from a table in ROM.
type JumpTableEntry struct {
	Site    string   `yaml:"site"`
	Targets []string `yaml:"targets"`
	Table   string   `yaml:"table"`
	Entries int      `yaml:"entries"`
	Long    bool     `yaml:"long"`
	State   string   `yaml:"state"`   // state of the targets, the state at the site if empty
	Exclude []string `yaml:"exclude"` // table entries that do not point to code
}

// DispatcherEntry marks a subroutine that jumps to an entry of the pointer
// table that follows its call instruction.
type DispatcherEntry struct {
	Address string `yaml:"address"`
	Name    string `yaml:"name"`
	Long    bool   `yaml:"long"`
	State   string `yaml:"state"`
}

// position is the location of an entry in the hint file.
type position struct {
	line   int
	column int
}

func (p position) after(other position) bool {
	if p.line != other.line {
		return p.line > other.line
	}
	return p.column > other.column
}

// UnmarshalYAML decodes the range and records its position in the file.
func (r *RangeEntry) UnmarshalYAML(node *yaml.Node) error {
	type plain RangeEntry
	if err := node.Decode((*plain)(r)); err != nil {
		return fmt.Errorf("decoding range: %w", err)
	}
	r.position = position{line: node.Line, column: node.Column}
	return nil
}

// Load reads a hint file. An empty input results in an empty file.
func Load(reader io.Reader) (*File, error) {
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)

	var file File
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return &file, nil
		}
		return nil, fmt.Errorf("parsing hint file: %w", err)
	}
	return &file, nil
}

// LoadFile reads the hint file with the given name.
func LoadFile(fileName string) (*File, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("opening hint file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	return Load(f)
}
