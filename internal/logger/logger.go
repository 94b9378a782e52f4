package logger

import (
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gitprobe/internal/constants"
)

const (
	formatJSON    = "json"
	formatConsole = "console"
)

func safeLevel(lvl string) zap.AtomicLevel {
	switch strings.ToLower(lvl) {
	case "debug":
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	}
}

// NewLogger builds a zap logger from viper settings. Diagnostics go to
// stderr so command output on stdout stays pipeable.
func NewLogger(v *viper.Viper) (*zap.Logger, error) {
	c := zap.NewProductionConfig()

	c.OutputPaths = []string{"stderr"}
	c.ErrorOutputPaths = []string{"stderr"}

	c.Level = safeLevel(v.GetString(constants.CfgLogLevel))

	switch v.GetString(constants.CfgLogFormat) {
	case formatJSON:
		c.Encoding = formatJSON
	default:
		c.Encoding = formatConsole
		c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		c.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	return c.Build()
}
