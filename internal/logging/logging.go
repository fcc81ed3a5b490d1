// Package logging builds the zap logger used across the application.
//
// Every entry is appended to a single file as
//
//	[2024-05-01T10:00:00Z] [INFO] awarded xp - {"amount":10}
//
// Entries without fields end after the message.
//
// In verbose mode warnings and errors are also echoed to stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// FileName is the log file created inside the log directory.
const FileName = "termcommander.log"

// Options configures New.
type Options struct {
	Dir     string
	Debug   bool
	Verbose bool
	Stderr  io.Writer
}

// New opens (or creates) the log file under opts.Dir and returns a logger
// writing to it. The returned close func flushes and closes the file.
func New(opts Options) (*zap.Logger, func() error, error) {
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	path := filepath.Join(opts.Dir, FileName)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	level := zapcore.InfoLevel
	if opts.Debug {
		level = zapcore.DebugLevel
	}

	core := NewCore(zapcore.AddSync(f), level)
	var zopts []zap.Option
	if opts.Verbose {
		stderr := opts.Stderr
		if stderr == nil {
			stderr = os.Stderr
		}
		core = zapcore.NewTee(core, NewCore(zapcore.AddSync(stderr), zapcore.WarnLevel))
		zopts = append(zopts, zap.AddStacktrace(zapcore.ErrorLevel))
	}

	logger := zap.New(core, zopts...)
	closeFn := func() error {
		_ = logger.Sync()
		return f.Close()
	}
	return logger, closeFn, nil
}

// NewCore returns a core that writes the bracketed line format to w.
func NewCore(w zapcore.WriteSyncer, level zapcore.LevelEnabler) zapcore.Core {
	return zapcore.NewCore(lineEncoder{zapcore.NewJSONEncoder(fieldsConfig())}, w, level)
}

// fieldsConfig makes the JSON encoder emit only fields and the stack.
func fieldsConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
	}
}

var linePool = buffer.NewPool()

// lineEncoder prefixes the JSON field object with the bracketed time,
// level and message, joined by " - ".
type lineEncoder struct {
	zapcore.Encoder
}

func (e lineEncoder) Clone() zapcore.Encoder {
	return lineEncoder{e.Encoder.Clone()}
}

func (e lineEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	data, err := e.Encoder.EncodeEntry(ent, fields)
	if err != nil {
		return nil, err
	}
	defer data.Free()

	line := linePool.Get()
	line.AppendString("[" + ent.Time.UTC().Format(time.RFC3339) + "] [" + ent.Level.CapitalString() + "] ")
	line.AppendString(ent.Message)
	if js := strings.TrimSpace(data.String()); js != "{}" {
		line.AppendString(" - ")
		line.AppendString(js)
	}
	line.AppendString(zapcore.DefaultLineEnding)
	return line, nil
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
