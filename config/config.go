// Package config loads hopreach settings.
//
// Values are resolved in this order, later sources winning:
//
//  1. Default()
//  2. a YAML file
//  3. HOPREACH_* environment variables
//
// and the result is checked by Validate. Command-line flags are applied by
// the CLI on top of the returned Config.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when Load is given no path. Its absence is not an error.
const DefaultPath = "hopreach.yaml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "HOPREACH_"

var (
	// ErrConfig wraps file and parse failures.
	ErrConfig = errors.New("config: cannot load")

	// ErrInvalid wraps validation failures.
	ErrInvalid = errors.New("config: invalid")
)

// Config is the full set of settings.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Graph    GraphConfig    `yaml:"graph"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Batch    BatchConfig    `yaml:"batch"`
	Log      LogConfig      `yaml:"log"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// InputConfig controls edge-list parsing.
type InputConfig struct {
	// Delimiter is "whitespace", "tab" or a single rune such as ",".
	Delimiter     string `yaml:"delimiter" validate:"delimiter"`
	CommentPrefix string `yaml:"comment_prefix" validate:"max=8"`
}

// GraphConfig controls graph construction.
type GraphConfig struct {
	SelfLoops bool `yaml:"self_loops"`
}

// AnalysisConfig controls sampling and traversal.
type AnalysisConfig struct {
	SampleSize int    `yaml:"sample_size" validate:"gte=0"`
	MaxDepth   int    `yaml:"max_depth" validate:"gte=1,lte=64"`
	Workers    int    `yaml:"workers" validate:"gte=1,lte=1024"`
	Seed       *int64 `yaml:"seed"` // nil samples from a fresh source
}

// BatchConfig controls the batch pipeline.
type BatchConfig struct {
	Size          int  `yaml:"size" validate:"gte=1"`
	MaxBatches    int  `yaml:"max_batches" validate:"gte=0"`
	ResetPerBatch bool `yaml:"reset_per_batch"`
	Top           int  `yaml:"top" validate:"gte=0"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	// Format is text, json, or auto (text on a terminal, json otherwise).
	Format string `yaml:"format" validate:"oneof=text json auto"`
}

// MetricsConfig controls the prometheus text-file export.
type MetricsConfig struct {
	File string `yaml:"file"` // empty disables the export
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Input:    InputConfig{Delimiter: "whitespace"},
		Graph:    GraphConfig{SelfLoops: true},
		Analysis: AnalysisConfig{SampleSize: 100, MaxDepth: 6, Workers: 1},
		Batch:    BatchConfig{Size: 1000, MaxBatches: 20, ResetPerBatch: true},
		Log:      LogConfig{Level: "info", Format: "text"},
	}
}

// Load resolves the configuration. An empty path reads DefaultPath if it
// exists; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	if err := loadFile(path, &cfg); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
		}
	}

	if err := loadEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// loadEnv applies HOPREACH_<SECTION>_<KEY> overrides. Unparseable numbers
// and booleans are errors rather than silently ignored.
func loadEnv(cfg *Config, lookup func(string) (string, bool)) error {
	var errs []error
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	num := func(key string, dst *int) {
		if v, ok := lookup(EnvPrefix + key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
				return
			}
			*dst = n
		}
	}
	flag := func(key string, dst *bool) {
		if v, ok := lookup(EnvPrefix + key); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
				return
			}
			*dst = b
		}
	}

	str("INPUT_DELIMITER", &cfg.Input.Delimiter)
	str("INPUT_COMMENT_PREFIX", &cfg.Input.CommentPrefix)
	flag("GRAPH_SELF_LOOPS", &cfg.Graph.SelfLoops)
	num("ANALYSIS_SAMPLE_SIZE", &cfg.Analysis.SampleSize)
	num("ANALYSIS_MAX_DEPTH", &cfg.Analysis.MaxDepth)
	num("ANALYSIS_WORKERS", &cfg.Analysis.Workers)
	if v, ok := lookup(EnvPrefix + "ANALYSIS_SEED"); ok {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sANALYSIS_SEED: %w", EnvPrefix, err))
		} else {
			cfg.Analysis.Seed = &seed
		}
	}
	num("BATCH_SIZE", &cfg.Batch.Size)
	num("BATCH_MAX_BATCHES", &cfg.Batch.MaxBatches)
	flag("BATCH_RESET_PER_BATCH", &cfg.Batch.ResetPerBatch)
	num("BATCH_TOP", &cfg.Batch.Top)
	str("LOG_LEVEL", &cfg.Log.Level)
	str("LOG_FORMAT", &cfg.Log.Format)
	str("METRICS_FILE", &cfg.Metrics.File)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}

	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("delimiter", func(fl validator.FieldLevel) bool {
		return validDelimiter(fl.Field().String())
	})

	return v
}

func validDelimiter(s string) bool {
	switch s {
	case "", "whitespace", "space", "tab", `\t`:
		return true
	}
	r, size := utf8.DecodeRuneInString(s)

	return r != utf8.RuneError && size == len(s) && r != '\n' && r != '\r'
}

// Validate checks every field constraint.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// SlogLevel maps Level to a slog.Level. Unknown values map to Info.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
