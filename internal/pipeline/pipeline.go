// Package pipeline orchestrates the segmentation workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"hash/crc32"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/snesgodisasm/internal/classifier"
	"github.com/retroenv/snesgodisasm/internal/disasm"
	"github.com/retroenv/snesgodisasm/internal/hints"
	"github.com/retroenv/snesgodisasm/internal/loader"
	"github.com/retroenv/snesgodisasm/internal/mapper"
	"github.com/retroenv/snesgodisasm/internal/options"
	"github.com/retroenv/snesgodisasm/internal/program"
	"github.com/retroenv/snesgodisasm/internal/symbols"
	"github.com/retroenv/snesgodisasm/internal/verification"
)

// Input contains everything the core stages need to segment a ROM image.
type Input struct {
	Data    []byte
	Hints   *hints.File // optional
	Mode    mapper.Mode
	FastROM bool
	Tracer  options.Tracer
}

// Pipeline orchestrates the complete segmentation workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new segmentation pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
	}
}

// Execute loads the input files and runs the complete segmentation pipeline.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, tracerOpts options.Tracer) (*program.Result, error) {
	mode, err := mapper.ParseMode(opts.Mode)
	if err != nil {
		return nil, fmt.Errorf("parsing mapping mode: %w", err)
	}

	data, hintFile, err := p.loader.Load(opts)
	if err != nil {
		return nil, fmt.Errorf("loading input: %w", err)
	}

	input := Input{
		Data:    data,
		Hints:   hintFile,
		Mode:    mode,
		FastROM: opts.FastROM,
		Tracer:  tracerOpts,
	}

	if !opts.Quiet {
		p.logger.Info("Processing SNES ROM",
			log.String("file", opts.Input),
			log.Stringer("mode", mode),
			log.Bool("fastrom", opts.FastROM),
			log.Int("size", len(data)))
	}

	image, hintSet, err := p.prepare(input)
	if err != nil {
		return nil, err
	}
	result, err := p.segment(ctx, input, image, hintSet, tracerOpts)
	if err != nil {
		return nil, err
	}
	p.printSummary(result)

	if opts.Verify {
		// the reference run reuses the resolved hints so that hint problems
		// are only reported once
		run := func(ctx context.Context, tracerOpts options.Tracer) (*program.Result, error) {
			return p.segment(ctx, input, image, hintSet, tracerOpts)
		}
		if err := verification.Verify(ctx, p.logger, run, tracerOpts, result); err != nil {
			return nil, fmt.Errorf("verification failed: %w", err)
		}
	}

	return result, nil
}

// Run segments a ROM image that is already in memory.
func (p *Pipeline) Run(ctx context.Context, input Input) (*program.Result, error) {
	image, hintSet, err := p.prepare(input)
	if err != nil {
		return nil, err
	}
	return p.segment(ctx, input, image, hintSet, input.Tracer)
}

// prepare maps the ROM image and resolves the hints against the mapping.
func (p *Pipeline) prepare(input Input) (*mapper.Image, *hints.Set, error) {
	m, err := mapper.New(input.Mode, len(input.Data), input.FastROM)
	if err != nil {
		return nil, nil, fmt.Errorf("creating mapper: %w", err)
	}
	image, err := mapper.NewImage(input.Data, m)
	if err != nil {
		return nil, nil, fmt.Errorf("creating image: %w", err)
	}

	hintFile := input.Hints
	if hintFile == nil {
		hintFile = &hints.File{}
	}
	return image, hintFile.Resolve(p.logger, m), nil
}

// segment traces the image and derives the result from the trace.
func (p *Pipeline) segment(ctx context.Context, input Input, image *mapper.Image, hintSet *hints.Set,
	tracerOpts options.Tracer) (*program.Result, error) {

	dis := disasm.New(p.logger, image, tracerOpts, hintSet)
	trace, err := dis.Trace(ctx)
	if err != nil {
		return nil, fmt.Errorf("tracing: %w", err)
	}

	regions, overrides, err := classifier.Classify(p.logger, image, trace, hintSet)
	if err != nil {
		return nil, fmt.Errorf("classifying: %w", err)
	}

	result := &program.Result{
		Mode:         input.Mode.String(),
		RomSize:      len(input.Data),
		Checksum:     crc32.ChecksumIEEE(input.Data),
		Regions:      regions,
		Instructions: classifier.Instructions(trace, regions, hintSet),
		Xrefs:        trace.Xrefs,
		Labels:       symbols.Assign(p.logger, trace, hintSet, image),
		Report:       trace.Report,
	}
	result.Report.Conflicts = nil
	result.Report.Add(hintSet.Conflicts...)
	result.Report.Add(trace.Report.Conflicts...)
	result.Report.Add(overrides...)
	result.Report.Sort()
	return result, nil
}

// printSummary logs the segmentation statistics.
func (p *Pipeline) printSummary(result *program.Result) {
	p.logger.Info("Segmentation finished",
		log.Int("code_bytes", result.Regions.Bytes(program.Code)),
		log.Int("data_bytes", result.Regions.Bytes(program.Data)),
		log.Int("ambiguous_bytes", result.Regions.Bytes(program.Ambiguous)),
		log.Int("unknown_bytes", result.Regions.Bytes(program.Unknown)),
		log.Int("instructions", len(result.Instructions)),
		log.Int("labels", len(result.Labels)),
		log.Int("conflicts", len(result.Report.Conflicts)),
		log.Int("steps", result.Report.Steps))

	if result.Report.Truncated {
		p.logger.Warn("Tracing was truncated, the result is incomplete",
			log.String("reason", result.Report.TruncationReason))
	}
}
