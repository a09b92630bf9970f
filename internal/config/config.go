// Package config resolves the settings of the command-line tools from an
// optional YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when no path is given.
const DefaultPath = ".aoc.yaml"

// Environment variables overlaid on the file.
const (
	EnvSession  = "AOC_SESSION"
	EnvInputDir = "AOC_INPUT_DIR"
	EnvBaseURL  = "AOC_BASE_URL"
	EnvLogLevel = "AOC_LOG_LEVEL"
)

// ErrInvalidConfig indicates a setting that cannot be used.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the resolved settings.
type Config struct {
	Session  string        `yaml:"session"`
	InputDir string        `yaml:"input_dir"`
	BaseURL  string        `yaml:"base_url"`
	LogLevel string        `yaml:"log_level"`
	Timeout  time.Duration `yaml:"timeout"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		InputDir: "input",
		BaseURL:  "https://adventofcode.com",
		LogLevel: "warn",
		Timeout:  30 * time.Second,
	}
}

// Load reads the YAML file at path over the defaults, then applies the
// environment. An empty path means DefaultPath, which may be absent; an
// explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	optional := path == ""
	if optional {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	case optional && errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("config: %w", err)
	}

	applyEnv(cfg)
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	for env, field := range map[string]*string{
		EnvSession:  &cfg.Session,
		EnvInputDir: &cfg.InputDir,
		EnvBaseURL:  &cfg.BaseURL,
		EnvLogLevel: &cfg.LogLevel,
	} {
		if v, ok := os.LookupEnv(env); ok && v != "" {
			*field = v
		}
	}
}

// applyDefaults restores defaults for keys the file set to empty values.
func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.InputDir == "" {
		cfg.InputDir = def.InputDir
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = def.Timeout
	}
}

// Validate checks the log level and timeout.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout %s", ErrInvalidConfig, c.Timeout)
	}
	return nil
}
