// Package logging wraps zap with the small sugared-logger surface the
// rest of the server calls into, so call sites never import zap
// directly.
package logging

import (
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	sugared *zap.SugaredLogger
}

func (l Logger) Debugf(template string, args ...any) { l.sugared.Debugf(template, args...) }
func (l Logger) Infof(template string, args ...any)  { l.sugared.Infof(template, args...) }
func (l Logger) Warnf(template string, args ...any)  { l.sugared.Warnf(template, args...) }
func (l Logger) Errorf(template string, args ...any) { l.sugared.Errorf(template, args...) }

func (l Logger) With(keysAndValues ...any) Logger {
	return Logger{sugared: l.sugared.With(keysAndValues...)}
}

func toZapLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New builds a console logger at the given level, writing to stdout.
// The server has no persistence layer, so there is nothing to rotate a
// log file against; every run logs straight to the console.
func New(level string) Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Local().Format("2006-01-02 15:04:05.000"))
	}
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(os.Stdout)), toZapLevel(level))
	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	return Logger{sugared: logger.Sugar()}
}
