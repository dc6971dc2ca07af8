// Package log exposes a process-wide zap sugared logger. Init is called
// once from main; before that every call is a no-op, which keeps tests
// quiet without any setup.
package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugar = zap.NewNop().Sugar()

func Init(level string) {
	lv := zapcore.InfoLevel
	switch level {
	case "debug":
		lv = zapcore.DebugLevel
	case "warn":
		lv = zapcore.WarnLevel
	case "error":
		lv = zapcore.ErrorLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lv)
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return
	}
	sugar = l.Sugar()
}

func Debugw(msg string, kv ...any) { sugar.Debugw(msg, kv...) }
func Infow(msg string, kv ...any)  { sugar.Infow(msg, kv...) }
func Warnw(msg string, kv ...any)  { sugar.Warnw(msg, kv...) }
func Errorw(msg string, kv ...any) { sugar.Errorw(msg, kv...) }
func Fatalw(msg string, kv ...any) { sugar.Fatalw(msg, kv...) }

func Sync() { _ = sugar.Sync() }
