// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/minkowski/sample"
	"github.com/katalvlaran/minkowski/treemap"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Defaults mirror the demonstration constants.
const (
	DefaultBinaryDepth   = 10 // grid of 2^10+1 points
	DefaultQuestionDepth = 20 // steps for ? and ?⁻¹
	DefaultValidate      = true
)

// MaxQuestionDepth bounds the recursion depth accepted from files.
const MaxQuestionDepth = 1 << 10

var (
	// ErrUnsupportedFormat indicates a file extension other than YAML or TOML.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrBadDepth indicates a depth outside its allowed range.
	ErrBadDepth = errors.New("config: depth out of range")

	// ErrNoMaps indicates a configuration without any tree map.
	ErrNoMaps = errors.New("config: no maps configured")

	// ErrBadMapName indicates an empty or repeated map name.
	ErrBadMapName = errors.New("config: bad map name")
)

// MapSpec names one tree map.
type MapSpec struct {
	Name  string             `yaml:"name" toml:"name"`
	Rules treemap.Dictionary `yaml:"rules" toml:"rules"`
}

// Config is the full run configuration.
type Config struct {
	BinaryDepth   int       `yaml:"binary_depth" toml:"binary_depth"`
	QuestionDepth int       `yaml:"question_depth" toml:"question_depth"`
	Validate      bool      `yaml:"validate" toml:"validate"`
	Maps          []MapSpec `yaml:"maps" toml:"maps"`
}

// Default returns the demonstration configuration: depths 10 and 20,
// validation on, and the generators A and B of Thompson's group F.
func Default() Config {
	return Config{
		BinaryDepth:   DefaultBinaryDepth,
		QuestionDepth: DefaultQuestionDepth,
		Validate:      DefaultValidate,
		Maps: []MapSpec{
			{Name: "a", Rules: treemap.GeneratorA()},
			{Name: "b", Rules: treemap.GeneratorB()},
		},
	}
}

// Load reads a configuration file, choosing the decoder by extension.
// Values absent from the file keep the Default ones; a file that lists
// maps replaces the default maps entirely. The result is not checked so
// callers can apply overrides first; call Check before use.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	return Parse(filepath.Ext(path), data)
}

// Parse decodes data in the format named by ext (".yaml", ".yml" or
// ".toml", case-insensitive) over the defaults. Like Load, it leaves
// checking to Check.
func Parse(ext string, data []byte) (Config, error) {
	cfg := Default()
	cfg.Maps = nil

	var err error
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: decoding %s: %w", ext, err)
	}
	if cfg.Maps == nil {
		cfg.Maps = Default().Maps
	}

	return cfg, nil
}

// Check reports every problem with c, combined into one error.
// Dictionaries are checked with treemap.Validate only when c.Validate is set.
func (c Config) Check() error {
	var err error
	if c.BinaryDepth < 0 || c.BinaryDepth > sample.MaxGridDepth {
		err = multierr.Append(err, fmt.Errorf("%w: binary_depth=%d, want 0..%d", ErrBadDepth, c.BinaryDepth, sample.MaxGridDepth))
	}
	if c.QuestionDepth < 0 || c.QuestionDepth > MaxQuestionDepth {
		err = multierr.Append(err, fmt.Errorf("%w: question_depth=%d, want 0..%d", ErrBadDepth, c.QuestionDepth, MaxQuestionDepth))
	}
	if len(c.Maps) == 0 {
		err = multierr.Append(err, ErrNoMaps)
	}

	seen := make(map[string]struct{}, len(c.Maps))
	for i, m := range c.Maps {
		if m.Name == "" {
			err = multierr.Append(err, fmt.Errorf("%w: map %d has no name", ErrBadMapName, i))
		} else if _, dup := seen[m.Name]; dup {
			err = multierr.Append(err, fmt.Errorf("%w: %q used twice", ErrBadMapName, m.Name))
		}
		seen[m.Name] = struct{}{}

		if c.Validate {
			if verr := treemap.Validate(m.Rules); verr != nil {
				err = multierr.Append(err, fmt.Errorf("config: map %q: %w", m.Name, verr))
			}
		}
	}

	return err
}

// BuildOptions returns the treemap options implied by c.
func (c Config) BuildOptions() []treemap.Option {
	if c.Validate {
		return []treemap.Option{treemap.WithValidation()}
	}

	return []treemap.Option{treemap.WithoutValidation()}
}
