// SPDX-License-Identifier: MIT

// qmconj - sample tree maps of Thompson's group F and their conjugates by
// the Minkowski question-mark function.
//
// Usage:
//
//	qmconj [-config run.yaml] [-binary-depth n] [-depth n] [-permissive] [-out file.csv] [-v]
//
// The output is a CSV table with columns
//
//	x, q, <map>, conj_<map>, …
//
// over the grid k·2^-n, ready for any plotting tool. Logs go to stderr.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/minkowski/config"
	"github.com/katalvlaran/minkowski/conjugate"
	"github.com/katalvlaran/minkowski/question"
	"github.com/katalvlaran/minkowski/sample"
	"github.com/katalvlaran/minkowski/treemap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// unset marks an integer flag that was not given.
const unset = -1

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options are the parsed command-line flags.
type options struct {
	configPath  string
	binaryDepth int
	depth       int
	permissive  bool
	out         string
	verbose     bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("qmconj", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "Path to a YAML or TOML run configuration (optional)")
	fs.IntVar(&o.binaryDepth, "binary-depth", unset, "Grid resolution: sample k/2^n (overrides config)")
	fs.IntVar(&o.depth, "depth", unset, "Steps for ? and its inverse (overrides config)")
	fs.BoolVar(&o.permissive, "permissive", false, "Skip prefix-code validation of the dictionaries")
	fs.StringVar(&o.out, "out", "-", "Output CSV file, - for stdout")
	fs.BoolVar(&o.verbose, "v", false, "Debug logging")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	return o, nil
}

// newLogger builds a logger writing to w: JSON at info level, or
// human-readable at debug level with -v.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	level := zapcore.InfoLevel
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	if verbose {
		level = zapcore.DebugLevel
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level))
}

// loadConfig resolves the configuration file and flag overrides.
func loadConfig(o options) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return config.Config{}, err
		}
	}
	if o.binaryDepth != unset {
		cfg.BinaryDepth = o.binaryDepth
	}
	if o.depth != unset {
		cfg.QuestionDepth = o.depth
	}
	if o.permissive {
		cfg.Validate = false
	}

	return cfg, cfg.Check()
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger := newLogger(o.verbose, stderr)
	defer func() { _ = logger.Sync() }()
	treemap.SetLogger(logger.Named("treemap"))

	cfg, err := loadConfig(o)
	if err != nil {
		return err
	}
	logger.Info("configuration",
		zap.String("path", o.configPath),
		zap.Int("binary_depth", cfg.BinaryDepth),
		zap.Int("question_depth", cfg.QuestionDepth),
		zap.Bool("validate", cfg.Validate),
		zap.Int("maps", len(cfg.Maps)))

	table, err := buildTable(cfg, logger)
	if err != nil {
		return err
	}

	if err = writeTable(table, o.out, stdout); err != nil {
		return err
	}
	logger.Info("table written", zap.String("out", o.out), zap.Int("rows", table.Rows()))

	return nil
}

// writeTable writes the CSV to path, or to stdout when path is "-".
func writeTable(table *sample.Table, path string, stdout io.Writer) error {
	if path == "-" {
		return table.WriteCSV(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err = table.WriteCSV(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// buildTable samples ?, every configured tree map and its conjugate.
func buildTable(cfg config.Config, logger *zap.Logger) (*sample.Table, error) {
	xs, err := sample.Grid(cfg.BinaryDepth)
	if err != nil {
		return nil, err
	}
	table := sample.NewTable("x", xs)

	qs, err := sample.Map(xs, func(x float64) (float64, error) {
		return question.Forward(x, cfg.QuestionDepth), nil
	})
	if err != nil {
		return nil, err
	}
	if err = table.AddColumn("q", qs); err != nil {
		return nil, err
	}

	for _, spec := range cfg.Maps {
		m, err := treemap.Build(spec.Rules, cfg.BuildOptions()...)
		if err != nil {
			return nil, fmt.Errorf("map %q: %w", spec.Name, err)
		}
		c := conjugate.New(m, conjugate.WithDepth(cfg.QuestionDepth))

		raw, err := sample.Map(xs, m.Apply)
		if err != nil {
			return nil, fmt.Errorf("map %q: %w", spec.Name, err)
		}
		conj, err := sample.Map(xs, c.Apply)
		if err != nil {
			return nil, fmt.Errorf("conjugate of %q: %w", spec.Name, err)
		}
		if err = table.AddColumn(spec.Name, raw); err != nil {
			return nil, err
		}
		if err = table.AddColumn("conj_"+spec.Name, conj); err != nil {
			return nil, err
		}

		logSlopes(logger, spec.Name, xs, raw, conj)
	}

	return table, nil
}

// logSlopes reports the largest adjacent slope change of a map and of its
// conjugate.
func logSlopes(logger *zap.Logger, name string, xs, raw, conj []float64) {
	rawSlopes, err := sample.Slopes(xs, raw)
	if err != nil {
		logger.Debug("slopes unavailable", zap.String("map", name), zap.Error(err))
		return
	}
	conjSlopes, err := sample.Slopes(xs, conj)
	if err != nil {
		logger.Debug("slopes unavailable", zap.String("map", name), zap.Error(err))
		return
	}
	rawJump, rawAt := sample.MaxSlopeJump(rawSlopes)
	conjJump, conjAt := sample.MaxSlopeJump(conjSlopes)
	logger.Info("slope jumps",
		zap.String("map", name),
		zap.Float64("raw", rawJump),
		zap.Int("raw_at", rawAt),
		zap.Float64("conjugated", conjJump),
		zap.Int("conjugated_at", conjAt))
}
