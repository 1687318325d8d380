package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yacobolo/jsxspace/internal/report"
)

// newLogger returns a console logger writing to w: debug level with
// --verbose, info otherwise, and a no-op logger with --quiet.
func newLogger(w io.Writer) *zap.Logger {
	if getBoolWithFallback("quiet", false) {
		return zap.NewNop()
	}

	level := zapcore.InfoLevel
	if getBoolWithFallback("verbose", false) {
		level = zapcore.DebugLevel
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	if report.ShouldUseColors(report.Config{UseColors: getBoolWithFallback("color", false)}) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(zapcore.AddSync(w)), level)
	return zap.New(core)
}
