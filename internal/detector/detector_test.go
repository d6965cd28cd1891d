package detector

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/snesgodisasm/internal/options"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name       string
		formatOpt  string
		outputFile string
		wantFormat string
	}{
		{
			name:       "explicit yaml format option",
			formatOpt:  "yaml",
			outputFile: "game.txt",
			wantFormat: options.FormatYAML,
		},
		{
			name:       "explicit text format option",
			formatOpt:  "TEXT",
			outputFile: "game.yaml",
			wantFormat: options.FormatText,
		},
		{
			name:       "detect from .yaml extension",
			outputFile: "game.yaml",
			wantFormat: options.FormatYAML,
		},
		{
			name:       "stdout defaults to text",
			outputFile: "",
			wantFormat: options.FormatText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options.Program{
				Parameters: options.Parameters{Output: tt.outputFile},
				Flags:      options.Flags{Format: tt.formatOpt},
			}

			got := Format(opts)
			assert.Equal(t, tt.wantFormat, got)
		})
	}
}

func TestFormatFromFile(t *testing.T) {
	tests := []struct {
		name       string
		filename   string
		wantFormat string
	}{
		{
			name:       ".yml extension",
			filename:   "segments.yml",
			wantFormat: options.FormatYAML,
		},
		{
			name:       ".YAML extension (uppercase)",
			filename:   "SEGMENTS.YAML",
			wantFormat: options.FormatYAML,
		},
		{
			name:       ".txt extension",
			filename:   "segments.txt",
			wantFormat: options.FormatText,
		},
		{
			name:       "no extension",
			filename:   "segments",
			wantFormat: options.FormatText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatFromFile(tt.filename)
			assert.Equal(t, tt.wantFormat, got)
		})
	}
}
