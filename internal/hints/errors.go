package hints

import (
	"errors"
	"fmt"
)

// ErrInvalidHint is wrapped by all hint validation errors.
var ErrInvalidHint = errors.New("invalid hint")

var (
	errUnmapped        = errors.New("address does not map to ROM")
	errEndBeforeStart  = errors.New("range end is before the start")
	errTableAndTargets = errors.New("either targets or a table has to be set")
	errNoEntries       = errors.New("table needs a positive number of entries")
	errKindOnCode      = errors.New("only data ranges can have a kind")
)

// InvalidHintError describes a rejected hint entry.
type InvalidHintError struct {
	Section string // section of the hint file, for example jump_tables
	Index   int    // index of the entry in the section
	Field   string
	Value   string
	Err     error
}

func (e *InvalidHintError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s[%d].%s: %s", ErrInvalidHint, e.Section, e.Index, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %s[%d].%s '%s': %s", ErrInvalidHint, e.Section, e.Index, e.Field, e.Value, e.Err)
}

// Unwrap returns ErrInvalidHint and the cause.
func (e *InvalidHintError) Unwrap() []error {
	return []error{ErrInvalidHint, e.Err}
}
