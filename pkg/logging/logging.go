package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the global logger instance
var Logger = zap.NewNop()

// Options controls how Setup builds the logger.
type Options struct {
	Debug      bool      // Development encoder at debug level instead of JSON at warn level.
	LogFile    string    // When set, logs go to this rotated file instead of Output.
	Output     io.Writer // Destination when LogFile is empty; stderr if nil.
	AppName    string
	AppVersion string
}

// Rotation limits for LogFile.
const (
	logMaxSizeMB  = 10
	logMaxBackups = 3
	logMaxAgeDays = 28
)

func Setup(opts Options) error {
	var cfg zap.Config

	if opts.Debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		// Console output belongs to the search summary; only problems are logged.
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		cfg.DisableStacktrace = true
	}

	// Add default fields
	cfg.InitialFields = map[string]interface{}{
		"appName":    opts.AppName,
		"appVersion": opts.AppVersion,
	}

	var logger *zap.Logger
	var err error
	switch {
	case opts.LogFile != "":
		logger = newLogger(cfg, zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.LogFile,
			MaxSize:    logMaxSizeMB,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAgeDays,
		}))
	case opts.Output != nil:
		logger = newLogger(cfg, zapcore.AddSync(opts.Output))
	default:
		logger, err = cfg.Build()
	}
	if err != nil {
		Logger = zap.NewExample()
		return err
	}

	Logger = logger
	zap.ReplaceGlobals(Logger)
	return nil
}

// newLogger builds what cfg.Build would, but writing to sink.
func newLogger(cfg zap.Config, sink zapcore.WriteSyncer) *zap.Logger {
	var encoder zapcore.Encoder
	if cfg.Encoding == "console" {
		encoder = zapcore.NewConsoleEncoder(cfg.EncoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(cfg.EncoderConfig)
	}

	opts := []zap.Option{zap.AddCaller()}
	if !cfg.DisableStacktrace {
		stackLevel := zap.ErrorLevel
		if cfg.Development {
			stackLevel = zap.WarnLevel
		}
		opts = append(opts, zap.AddStacktrace(stackLevel))
	}

	fields := make([]zap.Field, 0, len(cfg.InitialFields))
	for key, value := range cfg.InitialFields {
		fields = append(fields, zap.Any(key, value))
	}
	opts = append(opts, zap.Fields(fields...))

	return zap.New(zapcore.NewCore(encoder, sink, cfg.Level), opts...)
}
