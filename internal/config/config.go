// Package config loads the optional YAML run configuration.
package config

import (
	"errors"
	"io"
	"os"

	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read from the working directory when no file is given
const DefaultFile = "rickroll.yaml"

type Config struct {
	MaxRecursionDepth int  `yaml:"max_recursion_depth"`
	UnwindLimit       int  `yaml:"unwind_limit"`
	MaxSteps          int  `yaml:"max_steps"`
	Debug             bool `yaml:"debug"`
	NoColor           bool `yaml:"no_color"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		MaxRecursionDepth: 10000,
		UnwindLimit:       8,
	}
}

// WithDefaults returns Default for a zero Config. Otherwise it only fills a
// zero MaxRecursionDepth, as 0 is a valid unwind_limit and max_steps.
func (c Config) WithDefaults() Config {
	if c == (Config{}) {
		return Default()
	}
	if c.MaxRecursionDepth == 0 {
		c.MaxRecursionDepth = Default().MaxRecursionDepth
	}

	return c
}

// Decode reads a configuration from r on top of the defaults. Unknown keys
// are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, pkgerrors.Wrap(err, "config: parse")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads path. An empty path falls back to DefaultFile when it exists
// and to the defaults otherwise.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	file, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, pkgerrors.Wrapf(err, "config: open %s", path)
	}
	defer file.Close()

	cfg, err := Decode(file)
	if err != nil {
		return Config{}, pkgerrors.WithMessage(err, path)
	}

	return cfg, nil
}

// Validate rejects limits that cannot run any program
func (c Config) Validate() error {
	if c.MaxRecursionDepth < 1 {
		return pkgerrors.Errorf("config: max_recursion_depth must be positive, got %d", c.MaxRecursionDepth)
	}
	if c.UnwindLimit < 0 {
		return pkgerrors.Errorf("config: unwind_limit must not be negative, got %d", c.UnwindLimit)
	}
	if c.MaxSteps < 0 {
		return pkgerrors.Errorf("config: max_steps must not be negative, got %d", c.MaxSteps)
	}

	return nil
}
