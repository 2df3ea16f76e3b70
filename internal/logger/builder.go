package logger

import (
	"io"
	stdlog "log" // Standard Go log package, aliased to avoid conflict with zerolog field

	"github.com/aleister1102/secretgate/internal/common/errorwrapper"
	"github.com/aleister1102/secretgate/internal/config"
	"github.com/rs/zerolog"
)

// LoggerBuilder provides fluent interface for building loggers
type LoggerBuilder struct {
	opts    Options
	console io.Writer
	err     error
}

// NewLoggerBuilder creates a builder for a warn-level, uncoloured stderr console logger
func NewLoggerBuilder() *LoggerBuilder {
	opts, _ := OptionsFromConfig(config.NewDefaultLogConfig())
	return &LoggerBuilder{opts: opts}
}

// WithConfig applies an application log config. The colour choice is kept.
func (lb *LoggerBuilder) WithConfig(cfg config.LogConfig) *LoggerBuilder {
	opts, err := OptionsFromConfig(cfg)
	opts.Color = lb.opts.Color
	lb.opts = opts
	lb.err = err
	return lb
}

// WithLevel overrides the configured level
func (lb *LoggerBuilder) WithLevel(level zerolog.Level) *LoggerBuilder {
	lb.opts.Level = level
	return lb
}

// WithColor enables ANSI colours on the console writer
func (lb *LoggerBuilder) WithColor(color bool) *LoggerBuilder {
	lb.opts.Color = color
	return lb
}

// WithConsoleOutput redirects console output, mainly for tests
func (lb *LoggerBuilder) WithConsoleOutput(out io.Writer) *LoggerBuilder {
	lb.console = out
	return lb
}

// Build creates the logger
func (lb *LoggerBuilder) Build() (zerolog.Logger, error) {
	if lb.err != nil {
		return zerolog.Nop(), lb.err
	}
	if lb.opts.MaxSizeMB <= 0 {
		return zerolog.Nop(), errorwrapper.NewValidationError("max_size_mb", lb.opts.MaxSizeMB, "max size must be positive")
	}

	factory := NewWriterFactory(lb.console)
	writers := []io.Writer{factory.CreateConsoleWriter(lb.opts)}
	if lb.opts.FilePath != "" {
		writers = append(writers, factory.CreateFileWriter(lb.opts))
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lb.opts.Level).
		With().
		Timestamp().
		Logger()

	stdlog.SetOutput(logger)
	stdlog.SetFlags(0)

	return logger, nil
}
