// If you are AI: This file builds a Logger from backend, level and format settings.

package logging

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Backend names accepted by New.
const (
	BackendZap    = "zap"
	BackendLogrus = "logrus"
)

// Format names accepted by New.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrUnknownBackend is returned for backend names other than zap and logrus.
var ErrUnknownBackend = errors.New("logging: unknown backend")

// Options selects and tunes a backend. Zero values mean zap, info, console, stderr.
type Options struct {
	Backend string
	Level   string
	Format  string
	Output  io.Writer
}

// New creates a Logger. The returned func flushes buffered output.
func New(opts Options) (Logger, func(), error) {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	if opts.Level == "" {
		opts.Level = "info"
	}
	switch opts.Backend {
	case "", BackendZap:
		return newZap(opts)
	case BackendLogrus:
		return newLogrus(opts)
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}

func newZap(opts Options) (Logger, func(), error) {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	if opts.Format == FormatJSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(opts.Output), level)
	l := zap.New(core)
	return ZapLogger{L: l}, func() { _ = l.Sync() }, nil
}

func newLogrus(opts Options) (Logger, func(), error) {
	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}

	l := logrus.New()
	l.SetOutput(opts.Output)
	l.SetLevel(level)
	if opts.Format == FormatJSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}
	return LogrusLogger{E: logrus.NewEntry(l)}, func() {}, nil
}
