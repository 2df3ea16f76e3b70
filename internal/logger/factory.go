package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// WriterStrategy wraps a destination in a format-specific writer
type WriterStrategy interface {
	CreateWriter(out io.Writer) io.Writer
}

// JSONWriterStrategy writes raw zerolog JSON lines
type JSONWriterStrategy struct{}

func (s *JSONWriterStrategy) CreateWriter(out io.Writer) io.Writer {
	return out
}

// ConsoleWriterStrategy writes human readable lines, coloured only when asked
type ConsoleWriterStrategy struct {
	Color bool
}

func (s *ConsoleWriterStrategy) CreateWriter(out io.Writer) io.Writer {
	return zerolog.ConsoleWriter{Out: out, NoColor: !s.Color, TimeFormat: "15:04:05"}
}

// TextWriterStrategy is the console layout without colours or timestamps
type TextWriterStrategy struct{}

func (s *TextWriterStrategy) CreateWriter(out io.Writer) io.Writer {
	return zerolog.ConsoleWriter{Out: out, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}
}

// strategyFor picks the writer strategy for a format. color only affects the
// console format.
func strategyFor(format LogFormat, color bool) WriterStrategy {
	switch format {
	case FormatJSON:
		return &JSONWriterStrategy{}
	case FormatText:
		return &TextWriterStrategy{}
	default:
		return &ConsoleWriterStrategy{Color: color}
	}
}

// WriterFactory creates the console and file writers for a set of Options
type WriterFactory struct {
	console io.Writer
}

// NewWriterFactory creates a writer factory whose console is out, or stderr when out is nil
func NewWriterFactory(out io.Writer) *WriterFactory {
	if out == nil {
		out = os.Stderr
	}
	return &WriterFactory{console: out}
}

// CreateConsoleWriter creates the console writer
func (wf *WriterFactory) CreateConsoleWriter(opts Options) io.Writer {
	return strategyFor(opts.Format, opts.Color).CreateWriter(wf.console)
}

// CreateFileWriter creates a rotating file writer. Files never get colour codes.
func (wf *WriterFactory) CreateFileWriter(opts Options) io.Writer {
	// lumberjack reports a missing directory only on first write
	_ = os.MkdirAll(filepath.Dir(opts.FilePath), 0755)

	rotating := &lumberjack.Logger{
		Filename:   opts.FilePath,
		MaxSize:    opts.MaxSizeMB,
		LocalTime:  true,
		MaxBackups: opts.MaxBackups,
	}
	return strategyFor(opts.Format, false).CreateWriter(rotating)
}
