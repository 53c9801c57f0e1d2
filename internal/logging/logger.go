package logging

import (
	"io"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger provides optional verbose logging and lightweight timing helpers.
// The zero value discards everything.
type Logger struct {
	z       *zap.Logger
	Verbose bool
}

func New(writer io.Writer, verbose bool) Logger {
	if writer == nil {
		return Logger{Verbose: verbose}
	}

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	encoderCfg.CallerKey = ""
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(writer),
		level,
	)
	return Logger{z: zap.New(core), Verbose: verbose}
}

// Zap returns the underlying logger, never nil.
func (l Logger) Zap() *zap.Logger {
	if l.z == nil {
		return zap.NewNop()
	}
	return l.z
}

// With returns a child logger carrying the given fields.
func (l Logger) With(fields ...zap.Field) Logger {
	if l.z == nil {
		return l
	}
	return Logger{z: l.z.With(fields...), Verbose: l.Verbose}
}

func (l Logger) Infof(format string, args ...any) {
	if l.z == nil {
		return
	}
	l.z.Sugar().Infof(format, args...)
}

func (l Logger) Warnf(format string, args ...any) {
	if l.z == nil {
		return
	}
	l.z.Sugar().Warnf(format, args...)
}

func (l Logger) Errorf(format string, args ...any) {
	if l.z == nil {
		return
	}
	l.z.Sugar().Errorf(format, args...)
}

func (l Logger) Verbosef(format string, args ...any) {
	if !l.Verbose || l.z == nil {
		return
	}
	l.z.Sugar().Debugf(format, args...)
}

// Measure returns a stop function that logs the elapsed time when called.
func (l Logger) Measure(label string) func() {
	if !l.Verbose {
		return func() {}
	}
	start := time.Now()
	return func() {
		elapsed := time.Since(start).Round(time.Millisecond)
		l.Verbosef("%s took %s", label, elapsed)
	}
}

// Sync flushes buffered entries.
func (l Logger) Sync() {
	if l.z == nil {
		return
	}
	_ = l.z.Sync()
}
