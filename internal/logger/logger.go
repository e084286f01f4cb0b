// Package logger holds the process-wide zap logger.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger. It is a no-op until Initialize runs.
var Logger *zap.SugaredLogger

func init() {
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up the global logger. JSON output is meant for CI logs;
// the console form is for people running the generator by hand. Verbose
// lowers the level to debug.
func Initialize(jsonOutput, verbose bool) error {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	var (
		zapLogger *zap.Logger
		err       error
	)

	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(level)
		config.OutputPaths = []string{"stderr"}
		zapLogger, err = config.Build()
	} else {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.TimeKey = ""
		encoderConfig.CallerKey = ""
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

		zapLogger = zap.New(
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(encoderConfig),
				zapcore.AddSync(os.Stderr),
				level,
			),
		)
	}

	if err != nil {
		return err
	}

	Logger = zapLogger.Sugar()

	return nil
}

// Sync flushes buffered log entries. Errors from syncing a terminal are
// ignored.
func Sync() {
	_ = Logger.Sync()
}
