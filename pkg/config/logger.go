package config

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the service's structured logger. When cfg.LogFile is
// set, output is written through lumberjack for on-disk rotation;
// otherwise it goes to stderr. This replaces the original's print-based
// @timing decorator (pathfinding/core/timing.py) with structured
// duration fields for every stage on a single Info line per request.
func NewLogger(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var writer zapcore.WriteSyncer
	if cfg.LogFile != "" {
		writer = zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    100, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		})
	} else {
		writer = zapcore.AddSync(os.Stderr)
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), writer, level)
	return zap.New(core), nil
}
