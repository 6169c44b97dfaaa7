package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/xqaoa/optimizer"
)

// Config holds run settings read from the YAML file given by --config.
// Command-line flags override file values.
type Config struct {
	Method        string `yaml:"method"`
	Restarts      int    `yaml:"restarts"`
	Workers       int    `yaml:"workers"`
	MaxIterations int    `yaml:"max_iterations"`
	Seed          int64  `yaml:"seed"`
	LogLevel      string `yaml:"log_level"`
}

func defaultConfig() Config {
	o := optimizer.DefaultOptions()
	return Config{
		Method:        string(o.Method),
		Restarts:      o.Restarts,
		Workers:       0,
		MaxIterations: o.MaxIterations,
		Seed:          o.Seed,
		LogLevel:      "info",
	}
}

// loadConfig overlays the file at path onto the defaults. An empty path
// returns the defaults unchanged. Unknown keys are rejected.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// options converts the run settings into optimizer options.
func (c Config) options(log zerolog.Logger) (optimizer.Options, error) {
	m, err := optimizer.ParseMethod(c.Method)
	if err != nil {
		return optimizer.Options{}, err
	}

	return optimizer.Options{
		Method:        m,
		Restarts:      c.Restarts,
		Workers:       c.Workers,
		MaxIterations: c.MaxIterations,
		Seed:          c.Seed,
		Logger:        log,
	}, nil
}

// newLogger returns a console logger on w; an unparsable level falls back to info.
func newLogger(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}).Level(lvl).With().Timestamp().Str("service", "xqaoa").Logger()
}
