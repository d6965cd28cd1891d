// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/snesgodisasm/internal/options"
	"github.com/retroenv/snesgodisasm/internal/pipeline"
	"github.com/retroenv/snesgodisasm/internal/writer"
)

var outputExtensions = map[string]string{
	options.FormatText: ".txt",
	options.FormatYAML: ".yaml",
}

// ProcessFile handles the complete file processing workflow
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, tracerOpts options.Tracer) error {
	result, err := pipeline.New(logger).Execute(ctx, opts, tracerOpts)
	if err != nil {
		return fmt.Errorf("segmenting: %w", err)
	}

	output, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if closer, ok := output.(io.Closer); ok && output != os.Stdout {
			_ = closer.Close()
		}
	}()

	w := writer.New(output, writer.Options{
		Format: opts.Format,
		Styled: opts.Output == "" && writer.IsTerminal(output),
	})
	if err := w.Write(result); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile, format string) string {
	ext := filepath.Ext(inputFile)
	outputExt, ok := outputExtensions[format]
	if !ok {
		outputExt = outputExtensions[options.DefaultFormat]
	}
	return inputFile[:len(inputFile)-len(ext)] + outputExt
}

func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	if len(commit) > 7 {
		commit = commit[:7]
	}
	logger.Info("snesgodisasm", log.String("version", buildinfo.Version(version, commit, date)))
}
