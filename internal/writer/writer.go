// Package writer outputs segmentation results as text reports or YAML documents.
package writer

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/retroenv/snesgodisasm/internal/options"
	"github.com/retroenv/snesgodisasm/internal/program"
	"golang.org/x/term"
)

var headingStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("81"))

// Options of the writer.
type Options struct {
	Format string // output format, text or yaml
	Styled bool   // style headings for terminal output
}

// Writer outputs a segmentation result.
type Writer struct {
	options Options
	writer  io.Writer
}

// New creates a new writer.
func New(writer io.Writer, options Options) *Writer {
	return &Writer{
		options: options,
		writer:  writer,
	}
}

// Write outputs the result in the configured format.
func (w *Writer) Write(result *program.Result) error {
	switch w.options.Format {
	case options.FormatText, "":
		return w.writeText(result)
	case options.FormatYAML:
		return w.writeYAML(result)
	default:
		return fmt.Errorf("unsupported output format '%s'", w.options.Format)
	}
}

// IsTerminal returns whether the writer is a terminal.
func IsTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func (w *Writer) heading(text string) string {
	if w.options.Styled {
		return headingStyle.Render(text)
	}
	return text
}
