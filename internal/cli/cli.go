// Package cli handles command line interface logic
package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/retroenv/retrogolib/cli"
	"github.com/retroenv/snesgodisasm/internal/config"
	"github.com/retroenv/snesgodisasm/internal/detector"
	"github.com/retroenv/snesgodisasm/internal/mapper"
	"github.com/retroenv/snesgodisasm/internal/options"
)

const programName = "snesgodisasm"

// ParseFlags parses the command line arguments, excluding the program name.
// Options that are not set on the command line are taken from the settings
// file and then from the defaults.
func ParseFlags(args []string) (options.Program, options.Tracer, error) {
	flags := cli.NewFlagSet(programName)
	var opts options.Program
	var positional options.Positional
	flags.AddSection("Parameters", &opts.Parameters)
	flags.AddSection("Flags", &opts.Flags)
	flags.AddSection("Tracer", &opts.TracerFlags)
	flags.AddPositional(&positional)

	remaining, err := flags.Parse(args)
	if err != nil {
		if errors.Is(err, cli.ErrHelpRequested) {
			return opts, options.Tracer{}, &UsageError{flags: flags}
		}
		return opts, options.Tracer{}, &UsageError{flags: flags, msg: err.Error()}
	}

	if err := validateArgs(flags, remaining); err != nil {
		return opts, options.Tracer{}, err
	}

	if opts.Input == "" {
		opts.Input = positional.File
	}
	if opts.Input == "" && opts.Batch == "" {
		return opts, options.Tracer{}, &UsageError{flags: flags}
	}

	settings, err := config.LoadSettings(opts.Settings)
	if err != nil {
		return opts, options.Tracer{}, fmt.Errorf("loading settings: %w", err)
	}
	applySettings(&opts, settings, flagGiven(args, "fastrom"))

	if err := normalizeOptions(&opts); err != nil {
		return opts, options.Tracer{}, &UsageError{flags: flags, msg: err.Error()}
	}

	tracerOptions, err := createTracerOptions(opts)
	if err != nil {
		return opts, options.Tracer{}, &UsageError{flags: flags, msg: err.Error()}
	}

	return opts, tracerOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *cli.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage information of all flags.
func (e *UsageError) ShowUsage() {
	if e.flags != nil {
		e.flags.ShowUsage()
	}
}

// validateArgs checks that no flags follow the file argument.
func validateArgs(flags *cli.FlagSet, args []string) error {
	if len(args) == 0 {
		return nil
	}

	arg := args[0]
	msg := fmt.Sprintf("unexpected argument %s", arg)
	if strings.HasPrefix(arg, "-") {
		msg = fmt.Sprintf("Potential argument %s found after file to segment, please pass the file to segment as last argument", arg)
	}
	return &UsageError{flags: flags, msg: msg}
}

// flagGiven returns whether the boolean flag is passed in the arguments, in
// any of the forms -name, --name, -name=value or --name=value.
func flagGiven(args []string, name string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		arg = strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
		arg, _, _ = strings.Cut(arg, "=")
		if arg == name {
			return true
		}
	}
	return false
}

// applySettings fills all options that were not set on the command line from
// the settings file. Boolean flags can not be told apart from their default
// value, so fastROMGiven states whether the command line set it.
func applySettings(opts *options.Program, settings config.Settings, fastROMGiven bool) {
	if opts.Mode == "" {
		opts.Mode = settings.Mapping.Mode
	}
	if !fastROMGiven {
		opts.FastROM = settings.Mapping.FastROM
	}
	if opts.Format == "" {
		opts.Format = settings.Output.Format
	}
	if opts.Workers == 0 {
		opts.Workers = settings.Tracer.Workers
	}
	if opts.MaxSteps == 0 {
		opts.MaxSteps = settings.Tracer.MaxSteps
	}
	if opts.Timeout == "" {
		opts.Timeout = settings.Tracer.Timeout
	}
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Mode = strings.ToLower(opts.Mode)
	if opts.Mode == "" {
		opts.Mode = options.DefaultMode
	}
	if _, err := mapper.ParseMode(opts.Mode); err != nil {
		return fmt.Errorf("unsupported mapping mode: %s. Valid options: lorom, hirom", opts.Mode)
	}

	opts.Format = detector.Format(*opts)
	if !slices.Contains(options.Formats, opts.Format) {
		return fmt.Errorf("unsupported output format: %s. Valid options: %s",
			opts.Format, strings.Join(options.Formats, ", "))
	}
	return nil
}

// createTracerOptions creates the tracer options based on program options
func createTracerOptions(opts options.Program) (options.Tracer, error) {
	tracerOptions := options.NewTracer()

	switch {
	case opts.Workers < 0:
		return tracerOptions, fmt.Errorf("invalid number of workers: %d", opts.Workers)
	case opts.Workers > 0:
		tracerOptions.Workers = opts.Workers
	}

	switch {
	case opts.MaxSteps < 0:
		return tracerOptions, fmt.Errorf("invalid maximum number of steps: %d", opts.MaxSteps)
	case opts.MaxSteps > 0:
		tracerOptions.MaxSteps = opts.MaxSteps
	}

	if opts.Timeout != "" {
		timeout, err := time.ParseDuration(opts.Timeout)
		if err != nil || timeout < 0 {
			return tracerOptions, fmt.Errorf("invalid timeout: %s", opts.Timeout)
		}
		tracerOptions.Timeout = timeout
	}

	return tracerOptions, nil
}
