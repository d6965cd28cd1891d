// Package detector handles output format detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/snesgodisasm/internal/options"
)

// Format determines the output format from options or the output file name.
// An explicitly set format always wins, otherwise the extension of the output
// file decides and unknown extensions use the default format.
func Format(opts options.Program) string {
	if opts.Format != "" {
		return strings.ToLower(opts.Format)
	}
	return formatFromFile(opts.Output)
}

// formatFromFile determines the output format based on file extension.
func formatFromFile(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".yaml", ".yml":
		return options.FormatYAML
	default:
		return options.DefaultFormat
	}
}
