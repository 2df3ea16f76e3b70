package logger

import (
	"strings"

	"github.com/aleister1102/secretgate/internal/common/errorwrapper"
	"github.com/aleister1102/secretgate/internal/config"
	"github.com/rs/zerolog"
)

// LogFormat selects how records are rendered.
type LogFormat int

const (
	FormatConsole LogFormat = iota
	FormatJSON
	FormatText
)

func (lf LogFormat) String() string {
	switch lf {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	default:
		return "console"
	}
}

// Options is the resolved logger setup. The console always goes to stderr
// unless redirected; FilePath enables a rotating file alongside it.
type Options struct {
	Level      zerolog.Level
	Format     LogFormat
	Color      bool
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
}

// OptionsFromConfig resolves a LogConfig. An unknown level still yields usable
// options at warn, together with the error.
func OptionsFromConfig(cfg config.LogConfig) (Options, error) {
	level, err := parseLevel(cfg.LogLevel)

	opts := Options{
		Level:      level,
		Format:     parseFormat(cfg.LogFormat),
		FilePath:   cfg.LogFile,
		MaxSizeMB:  cfg.MaxLogSizeMB,
		MaxBackups: cfg.MaxLogBackups,
	}
	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = config.DefaultMaxLogSizeMB
	}
	if opts.MaxBackups <= 0 {
		opts.MaxBackups = config.DefaultMaxLogBackups
	}
	return opts, err
}

// parseLevel maps a config level to zerolog. Empty means warn.
func parseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return zerolog.WarnLevel, nil
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.WarnLevel, errorwrapper.WrapError(err, "invalid log level")
	}
	return level, nil
}

func parseFormat(s string) LogFormat {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	default:
		return FormatConsole
	}
}
