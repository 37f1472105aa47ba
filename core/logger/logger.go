package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init builds the process logger. level accepts debug/info/warn/error;
// anything else falls back to info.
func Init(level string) {
	once.Do(func() {
		lvl := zapcore.InfoLevel
		if parsed, err := zapcore.ParseLevel(level); err == nil {
			lvl = parsed
		}

		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(lvl)
		cfg.EncoderConfig.TimeKey = "ts"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

		l, err := cfg.Build(zap.AddCallerSkip(1))
		if err != nil {
			os.Stderr.WriteString("logger init failed: " + err.Error() + "\n")
			l = zap.NewNop()
		}
		sugar = l.Sugar()
	})
}

func get() *zap.SugaredLogger {
	if sugar == nil {
		Init("info")
	}
	return sugar
}

// normalize tolerates call sites that pass a bare error instead of
// key-value pairs, e.g. logger.Error("Repo:Method", err).
func normalize(keysAndValues []any) []any {
	if len(keysAndValues)%2 == 1 {
		return append([]any{"error"}, keysAndValues...)
	}
	return keysAndValues
}

func Debug(msg string, keysAndValues ...any) {
	get().Debugw(msg, normalize(keysAndValues)...)
}

func Info(msg string, keysAndValues ...any) {
	get().Infow(msg, normalize(keysAndValues)...)
}

func Warn(msg string, keysAndValues ...any) {
	get().Warnw(msg, normalize(keysAndValues)...)
}

func Error(msg string, keysAndValues ...any) {
	get().Errorw(msg, normalize(keysAndValues)...)
}

func Fatal(msg string, keysAndValues ...any) {
	get().Fatalw(msg, normalize(keysAndValues)...)
}

// Sync flushes buffered log entries. Call on shutdown.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
