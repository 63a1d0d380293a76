package logging

import (
	"context"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a zap.SugaredLogger to Logger. The context is accepted for
// interface parity only; zap does not read it.
type ZapLogger struct {
	l *zap.SugaredLogger
}

// NewZapLogger builds a JSON zap logger writing to w.
func NewZapLogger(production bool, w io.Writer) (*ZapLogger, error) {
	cfg := zap.NewDevelopmentEncoderConfig()
	level := zapcore.DebugLevel
	if production {
		cfg = zap.NewProductionEncoderConfig()
		level = zapcore.InfoLevel
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(cfg), zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	return &ZapLogger{l: zap.New(core).Sugar()}, nil
}

func (z *ZapLogger) Debug(_ context.Context, msg string, args ...any) {
	z.l.Debugw(msg, args...)
}

func (z *ZapLogger) Info(_ context.Context, msg string, args ...any) {
	z.l.Infow(msg, args...)
}

func (z *ZapLogger) Warn(_ context.Context, msg string, args ...any) {
	z.l.Warnw(msg, args...)
}

func (z *ZapLogger) Error(_ context.Context, msg string, args ...any) {
	z.l.Errorw(msg, args...)
}

func (z *ZapLogger) With(args ...any) Logger {
	return &ZapLogger{l: z.l.With(args...)}
}

// Sync flushes buffered entries.
func (z *ZapLogger) Sync() error {
	return z.l.Sync()
}

var _ Logger = (*ZapLogger)(nil)
