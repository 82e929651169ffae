package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	OutputFile     string        `envconfig:"TIKZ_OUTPUT_FILE" default:"tikz_code.tex"`
	OutputDir      string        `envconfig:"TIKZ_OUTPUT_DIR" default:"."`
	CompilerPath   string        `envconfig:"TIKZ_COMPILER" default:"latexmk"`
	CompilerArgs   []string      `envconfig:"TIKZ_COMPILER_ARGS" default:"-pdf,-interaction=nonstopmode"`
	CompileTimeout time.Duration `envconfig:"TIKZ_COMPILE_TIMEOUT" default:"2m"`
	Quiet          bool          `envconfig:"TIKZ_QUIET" default:"true"`
	ViewerPath     string        `envconfig:"TIKZ_VIEWER" default:"xdg-open"`
	LogLevel       string        `envconfig:"TIKZ_LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Level parses LogLevel into a slog level.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("parse log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}
