// Package log is a thin wrapper over zap that carries a process-wide logger
// and context-first level helpers, so call sites read as
// log.Info(ctx, "[PIPELINE]", log.String("batchId", id)).
package log

import (
	"context"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var base = zap.NewNop()

// Init configures the global logger. option "console" selects a development
// encoder, anything else the production JSON encoder.
func Init(option, level string) error {
	cfg := zap.NewProductionConfig()
	if option == "console" {
		cfg = zap.NewDevelopmentConfig()
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	base = logger
	return nil
}

// InitForTest silences the global logger inside test mains.
func InitForTest() {
	base = zap.NewNop()
}

func Sync() { _ = base.Sync() }

func Debug(_ context.Context, msg string, fields ...zap.Field) { base.Debug(msg, fields...) }
func Info(_ context.Context, msg string, fields ...zap.Field)  { base.Info(msg, fields...) }
func Warn(_ context.Context, msg string, fields ...zap.Field)  { base.Warn(msg, fields...) }
func Error(_ context.Context, msg string, fields ...zap.Field) { base.Error(msg, fields...) }
func Fatal(_ context.Context, msg string, fields ...zap.Field) { base.Fatal(msg, fields...) }

func Fatalf(ctx context.Context, format string, args ...interface{}) {
	base.Sugar().Fatalf(format, args...)
}

func String(key, value string) zap.Field          { return zap.String(key, value) }
func Int(key string, value int) zap.Field         { return zap.Int(key, value) }
func Int64(key string, value int64) zap.Field     { return zap.Int64(key, value) }
func Time(key string, value time.Time) zap.Field  { return zap.Time(key, value) }
func Any(key string, value interface{}) zap.Field { return zap.Any(key, value) }
func Err(err error) zap.Field                     { return zap.Error(err) }
