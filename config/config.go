// Package config resolves mazegen settings from, in increasing precedence:
// built-in defaults, an optional YAML file, an optional .env file and the
// process environment (MAZEGEN_* variables). Command-line flags are applied
// on top by the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/labyrinth/analyzer"
	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/grid"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MAZEGEN_"

// Log formats accepted by LogFormat.
const (
	LogFormatAuto = "auto"
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds every tunable of a mazegen invocation.
type Config struct {
	Width     int    `yaml:"width"`     // columns
	Height    int    `yaml:"height"`    // rows
	Algorithm string `yaml:"algorithm"` // dfs, prim or kruskal
	Seed      int64  `yaml:"seed"`      // 0 ⇒ generator default seed
	Runs      int    `yaml:"runs"`      // repetitions per algorithm for compare

	Validate bool             `yaml:"validate"` // spanning-tree check before analysis
	Weights  analyzer.Weights `yaml:"weights"`  // quality index weights

	LogLevel    string `yaml:"log_level"`    // debug, info, warn, error
	LogFormat   string `yaml:"log_format"`   // auto, text, json
	MetricsFile string `yaml:"metrics_file"` // Prometheus textfile path, empty disables
}

// Default returns the built-in configuration: a 20×10 DFS maze.
func Default() Config {
	return Config{
		Width:     20,
		Height:    10,
		Algorithm: string(generator.MethodDFS),
		Seed:      0,
		Runs:      5,
		Validate:  true,
		Weights:   analyzer.DefaultWeights(),
		LogLevel:  "info",
		LogFormat: LogFormatAuto,
	}
}

// Load builds a Config from defaults, then path (if non-empty), then envFiles
// (missing files are ignored, malformed ones fail with ErrInvalidConfig; with
// none given, ./.env is tried), then the environment.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := loadDotEnv(envFiles); err != nil {
		return cfg, err
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// loadDotEnv loads .env files into the process environment without
// overriding variables that are already set. Missing files are skipped; a
// file that exists but does not parse is an error.
func loadDotEnv(files []string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("%w: load %s: %v", ErrInvalidConfig, f, err)
		}
	}

	return nil
}

// applyEnv overlays MAZEGEN_* variables read through lookup.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		if v, ok := lookup(EnvPrefix + key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%w: %s%s must be an integer: %v", ErrInvalidConfig, EnvPrefix, key, err)
			}
			*dst = n
		}
		return nil
	}

	if err := num("WIDTH", &c.Width); err != nil {
		return err
	}
	if err := num("HEIGHT", &c.Height); err != nil {
		return err
	}
	if err := num("RUNS", &c.Runs); err != nil {
		return err
	}
	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		s, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED must be an integer: %v", ErrInvalidConfig, EnvPrefix, err)
		}
		c.Seed = s
	}
	if v, ok := lookup(EnvPrefix + "VALIDATE"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %sVALIDATE must be a boolean: %v", ErrInvalidConfig, EnvPrefix, err)
		}
		c.Validate = b
	}
	str("ALGORITHM", &c.Algorithm)
	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FORMAT", &c.LogFormat)
	str("METRICS_FILE", &c.MetricsFile)

	return nil
}

// Method returns the parsed algorithm selector.
func (c Config) Method() (generator.Method, error) {
	return generator.ParseMethod(c.Algorithm)
}

// Check reports the first invalid setting, wrapped in ErrInvalidConfig and,
// where one exists, the domain sentinel (grid.ErrInvalidDimensions,
// generator.ErrUnknownAlgorithm, analyzer.ErrInvalidWeights).
func (c Config) Check() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %w: got %dx%d", ErrInvalidConfig, grid.ErrInvalidDimensions, c.Width, c.Height)
	}
	if _, err := c.Method(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Runs <= 0 {
		return fmt.Errorf("%w: runs must be positive, got %d", ErrInvalidConfig, c.Runs)
	}
	if err := c.Weights.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case LogFormatAuto, LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.LogFormat)
	}

	return nil
}
