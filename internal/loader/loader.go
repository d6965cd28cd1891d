// Package loader handles ROM and hint file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/snesgodisasm/internal/hints"
	"github.com/retroenv/snesgodisasm/internal/options"
)

// CopierHeaderSize is the size of the header that copier devices prepend
// to ROM images.
const CopierHeaderSize = 512

var errEmptyFile = errors.New("file is empty")

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load loads the ROM image of the input file and the hint file if one is
// specified. A copier header is removed from the image.
func (l *Loader) Load(opts options.Program) ([]byte, *hints.File, error) {
	file, err := os.Open(opts.Input)
	if err != nil {
		return nil, nil, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	data, err := Read(file)
	if err != nil {
		return nil, nil, fmt.Errorf("reading file %s: %w", opts.Input, err)
	}

	hintFile := &hints.File{}
	if opts.Hints != "" {
		hintFile, err = hints.LoadFile(opts.Hints)
		if err != nil {
			return nil, nil, fmt.Errorf("loading hint file %s: %w", opts.Hints, err)
		}
	}

	return data, hintFile, nil
}

// Read reads a ROM image and strips the copier header, which is present
// when the size is 512 bytes more than a multiple of 1 KiB.
func Read(reader io.Reader) ([]byte, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading data: %w", err)
	}

	if len(data)%1024 == CopierHeaderSize {
		data = data[CopierHeaderSize:]
	}
	if len(data) == 0 {
		return nil, errEmptyFile
	}
	return data, nil
}
