// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/lmittmann/tint"
)

// config holds the environment-provided defaults; flags override them.
type config struct {
	LogLevel  string  `env:"STOCHSIM_LOG_LEVEL" envDefault:"info"`
	LogFormat string  `env:"STOCHSIM_LOG_FORMAT" envDefault:"text"`
	MaxIter   int     `env:"STOCHSIM_MAX_ITER" envDefault:"100000"`
	MaxT      float64 `env:"STOCHSIM_MAX_T" envDefault:"10"`
	Seed      uint64  `env:"STOCHSIM_SEED" envDefault:"0"`
}

// loadConfig reads config from the process environment.
func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// parseConfig reads config from an explicit environment map.
func parseConfig(environment map[string]string) (config, error) {
	var cfg config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environment}); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// newLogger builds the CLI logger: tint for text, slog's JSON handler for json.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	switch format {
	case "text":
		_, isFile := w.(*os.File)
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      lvl,
			TimeFormat: "15:04:05",
			NoColor:    !isFile,
		})), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})), nil
	default:
		return nil, fmt.Errorf("log format %q: want text or json", format)
	}
}
