package log

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger instantiates a zap logger for console use: timestamped entries
// with capitalized colored levels, info/warn on stdout and errors on stderr.
func NewLogger(level string, disableTimestamp bool) *zap.SugaredLogger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout("01/02/2006 15:04:05")
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if disableTimestamp {
		encoderCfg.TimeKey = zapcore.OmitKey
	}
	encoder := zapcore.NewConsoleEncoder(encoderCfg)

	min := ParseLevel(level)
	stdoutLevels := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= min && l < zapcore.ErrorLevel
	})
	stderrLevels := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= min && l >= zapcore.ErrorLevel
	})

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), stdoutLevels),
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), stderrLevels),
	)
	return zap.New(core).Sugar()
}

// ParseLevel maps a config level string to a zap level, defaulting to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "WARN", "WARNING":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
