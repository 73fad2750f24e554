package main

import (
	"context"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

/***** CONSTANT ********************************/

const ENV_PREFIX = "EVER_"

/***** VARIABLE ********************************/

// ErrConfig marks every invalid setting, whether it came from the
// environment, a command-line flag or a job file.
var ErrConfig = errors.New("invalid config")

/***** STRUCT **********************************/

// Config holds the process-wide settings. Compiled defaults are overridden
// by EVER_* environment variables, which command-line flags override in turn.
type Config struct {
	LogLevel  string `koanf:"log_level"`  // "debug", "info", "warn", "error"
	LogFormat string `koanf:"log_format"` // "json" or "text"

	// Pattern is the default pattern of the format, parse and run commands.
	Pattern string `koanf:"pattern"`

	// Workers bounds the tasks of a job run at once when the job file does
	// not say.
	Workers int `koanf:"workers"`
}

/***** FUNCTION ********************************/

func defaults() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		Pattern:   "%Y-%M-%D %h:%m:%s",
		Workers:   4,
	}
}

/***********************************************/

// Load reads the environment on top of the compiled defaults. EVER_LOG_LEVEL
// maps to log_level, EVER_WORKERS to workers, and so on.
func Load(ctx context.Context) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	k := koanf.New(".")
	cfg := defaults()

	err := k.Load(env.Provider(ENV_PREFIX, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, ENV_PREFIX))
	}), nil)

	if err != nil {
		return nil, errors.Wrap(err, "load env vars")
	}

	if err = k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

/***** METHOD **********************************/

func (cfg *Config) Validate() error {
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.Wrapf(ErrConfig, "unknown log level %q", cfg.LogLevel)
	}

	switch strings.ToLower(cfg.LogFormat) {
	case "json", "text":
	default:
		return errors.Wrapf(ErrConfig, "unknown log format %q", cfg.LogFormat)
	}

	if cfg.Pattern == "" {
		return errors.Wrap(ErrConfig, "empty pattern")
	}

	if cfg.Workers < MIN_WORKER_NUM || cfg.Workers > MAX_WORKER_NUM {
		return errors.Wrapf(ErrConfig, "workers must be in %d-%d", MIN_WORKER_NUM, MAX_WORKER_NUM)
	}

	return nil
}

/***********************************************/
