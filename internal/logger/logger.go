package logger

import (
	"github.com/aleister1102/secretgate/internal/config"
	"github.com/rs/zerolog"
)

// New creates the process logger from the application log config. color
// controls ANSI codes on the console and should follow the report's colour decision.
func New(cfg config.LogConfig, color bool) (zerolog.Logger, error) {
	return NewLoggerBuilder().WithColor(color).WithConfig(cfg).Build()
}

// NewVerbose is New with the level forced to debug
func NewVerbose(cfg config.LogConfig, color bool) (zerolog.Logger, error) {
	return NewLoggerBuilder().WithColor(color).WithConfig(cfg).WithLevel(zerolog.DebugLevel).Build()
}
