// Package logger provides structured logging using Zap.
package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

type options struct {
	filePath  string
	maxSizeMB int
}

// Option customizes logger initialization.
type Option func(*options)

// WithFile additionally writes logs to a size-rotated file. An empty path is ignored.
func WithFile(path string, maxSizeMB int) Option {
	return func(o *options) {
		o.filePath = path
		o.maxSizeMB = maxSizeMB
	}
}

// Init initializes the global logger for the given environment.
// For "production", it uses a JSON encoder. For all other environments,
// it uses a human-readable console encoder.
func Init(env string, opts ...Option) {
	once.Do(func() {
		var o options
		for _, opt := range opts {
			opt(&o)
		}

		var encCfg zapcore.EncoderConfig
		var encoder zapcore.Encoder
		level := zap.NewAtomicLevelAt(zapcore.DebugLevel)
		if env == "production" {
			encCfg = zap.NewProductionEncoderConfig()
			encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
			encoder = zapcore.NewJSONEncoder(encCfg)
			level.SetLevel(zapcore.InfoLevel)
		} else {
			encCfg = zap.NewDevelopmentEncoderConfig()
			encoder = zapcore.NewConsoleEncoder(encCfg)
		}

		sinks := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}
		if o.filePath != "" {
			if o.maxSizeMB <= 0 {
				o.maxSizeMB = 100
			}
			sinks = append(sinks, zapcore.AddSync(&lumberjack.Logger{
				Filename:   o.filePath,
				MaxSize:    o.maxSizeMB,
				MaxBackups: 5,
				MaxAge:     30,
				Compress:   true,
			}))
		}

		core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(sinks...), level)
		sugar = zap.New(core, zap.AddCaller()).Sugar()
	})
}

// Get returns the global sugared logger.
// If Init has not been called, it initializes a development logger.
func Get() *zap.SugaredLogger {
	if sugar == nil {
		Init("development")
	}
	return sugar
}

// Sync flushes any buffered log entries. Call this before application exit.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
