package cmd

import (
	"os"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger     *zap.SugaredLogger
	loggerOnce sync.Once
	configUsed string
	runID      = ulid.Make()
)

// Logger returns the process logger. Until initLogger runs it is a plain
// production logger on stderr.
func Logger() *zap.SugaredLogger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = newLogger(zapcore.InfoLevel, false)
		}
	})
	return logger
}

func initLogger() {
	level, err := zapcore.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		Logger().Warnf("bad log level %q, using info", viper.GetString("log.level"))
		level = zapcore.InfoLevel
	}

	logger = newLogger(level, viper.GetBool("log.dev"))
	if configUsed != "" {
		logger.Infof("using config file: %s", configUsed)
	}
}

// newLogger writes to stderr so stdout carries generator output only.
func newLogger(level zapcore.Level, dev bool) *zap.SugaredLogger {
	var encoder zapcore.Encoder
	if dev {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level)
	return zap.New(core).Sugar().With(zap.Stringer("run", runID))
}
