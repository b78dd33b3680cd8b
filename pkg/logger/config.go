package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

// Config holds logger settings loaded from the environment.
type Config struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"APP_NAME" envDefault:"arshowroom"`
	Level   string `env:"LOG_LEVEL"`
	Format  string `env:"LOG_FORMAT"`
}

// FromConfig builds a logger with environment defaults, then applies the
// explicit level and format overrides from cfg followed by opts.
func FromConfig(cfg Config, opts ...Option) (*slog.Logger, error) {
	all := []Option{WithEnvironment(cfg.Env, cfg.Service)}

	if cfg.Level != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("logger: invalid level %q: %w", cfg.Level, err)
		}
		all = append(all, WithLevel(lvl))
	}

	switch f := Format(strings.ToLower(cfg.Format)); f {
	case "":
	case FormatJSON, FormatText:
		all = append(all, WithFormat(f))
	default:
		return nil, fmt.Errorf("logger: invalid format %q: must be %q or %q", cfg.Format, FormatJSON, FormatText)
	}

	return New(append(all, opts...)...), nil
}
