// Package config handles the logger setup and the settings file.
package config

import (
	"fmt"
	"io"

	"github.com/retroenv/retrogolib/config"
	"github.com/retroenv/retrogolib/log"
)

// Settings contains the defaults that are read from a settings file.
// Zero values mean that the key was not set.
type Settings struct {
	Mapping MappingSettings `config:"mapping"`
	Tracer  TracerSettings  `config:"tracer"`
	Output  OutputSettings  `config:"output"`
}

// MappingSettings contains the address mapping settings.
type MappingSettings struct {
	Mode    string `config:"mode"`
	FastROM bool   `config:"fastrom"`
}

// TracerSettings contains the tracer budget settings.
type TracerSettings struct {
	Workers  int    `config:"workers"`
	MaxSteps int    `config:"max_steps"`
	Timeout  string `config:"timeout"`
}

// OutputSettings contains the output settings.
type OutputSettings struct {
	Format string `config:"format"`
}

var parseOptions = config.Options{
	InlineComments: true,
}

// LoadSettings reads the settings file. An empty file name returns empty settings.
func LoadSettings(fileName string) (Settings, error) {
	var settings Settings
	if fileName == "" {
		return settings, nil
	}

	cfg, err := config.Open(fileName, parseOptions)
	if err != nil {
		return settings, fmt.Errorf("opening settings file: %w", err)
	}
	if err := cfg.Unmarshal(&settings); err != nil {
		return settings, fmt.Errorf("parsing settings file %s: %w", fileName, err)
	}
	return settings, nil
}

// ParseSettings reads settings from a reader.
func ParseSettings(reader io.Reader) (Settings, error) {
	var settings Settings

	cfg, err := config.Parse(reader, parseOptions)
	if err != nil {
		return settings, fmt.Errorf("reading settings: %w", err)
	}
	if err := cfg.Unmarshal(&settings); err != nil {
		return settings, fmt.Errorf("parsing settings: %w", err)
	}
	return settings, nil
}

// CreateLogger creates the application logger. Debug logging takes
// precedence over quiet mode, which only shows errors.
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case debug:
		cfg.Level = log.DebugLevel
	case quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
