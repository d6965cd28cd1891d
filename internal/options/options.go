// Package options contains the program options.
package options

import (
	"runtime"
	"time"
)

// Positional contains positional arguments.
type Positional struct {
	File string `arg:"positional" usage:"ROM file to segment"`
}

// Parameters contains file path options.
type Parameters struct {
	Input    string `flag:"i" usage:"input ROM file"`
	Output   string `flag:"o" usage:"output file (default: stdout)"`
	Hints    string `flag:"hints" usage:"hint file (.yaml) with entry points, ranges and jump tables"`
	Settings string `flag:"settings" usage:"settings file with mapping, tracer and output defaults"`
	Batch    string `flag:"batch" usage:"batch process files matching pattern (e.g. *.sfc)"`
}

// Flags contains behavior options. Empty or zero values are taken from the
// settings file or the defaults.
type Flags struct {
	Mode    string `flag:"m" usage:"mapping mode: lorom, hirom (default: lorom)"`
	FastROM bool   `flag:"fastrom" usage:"ROM uses the fast mirror banks"`
	Format  string `flag:"f" usage:"output format: text, yaml (default: text)"`
	Verify  bool   `flag:"verify" usage:"verify that a single worker trace produces the same result"`
	Debug   bool   `flag:"debug" usage:"enable debug logging"`
	Quiet   bool   `flag:"q" usage:"quiet mode"`
}

// TracerFlags contains the tracer budget options.
type TracerFlags struct {
	Workers  int    `flag:"workers" usage:"number of tracing workers (default: number of CPUs)"`
	MaxSteps int    `flag:"max-steps" usage:"maximum number of traced instructions"`
	Timeout  string `flag:"timeout" usage:"maximum tracing duration, for example 30s"`
}

// Program options of the segmenter.
type Program struct {
	Parameters
	Flags
	TracerFlags
}

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Formats lists all supported output formats.
var Formats = []string{FormatText, FormatYAML}

// Default values of the program options.
const (
	DefaultMode     = "lorom"
	DefaultFormat   = FormatText
	DefaultMaxSteps = 4_000_000
	DefaultTimeout  = 30 * time.Second
	maxWorkers      = 16
)

// Tracer defines options to control the control flow tracer.
type Tracer struct {
	Workers  int           // number of concurrent workers
	MaxSteps int           // maximum number of node expansions, 0 for unlimited
	Timeout  time.Duration // maximum tracing duration, 0 for unlimited
}

// NewTracer returns a new tracer options instance with default options.
func NewTracer() Tracer {
	return Tracer{
		Workers:  DefaultWorkers(),
		MaxSteps: DefaultMaxSteps,
		Timeout:  DefaultTimeout,
	}
}

// DefaultWorkers returns the number of CPUs, capped at 16.
func DefaultWorkers() int {
	return min(runtime.NumCPU(), maxWorkers)
}
