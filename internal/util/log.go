package util

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger = zap.NewNop().Sugar()
	mutex  = &sync.Mutex{}
)

// SetupLogging installs the debug logger. When verbose is false the
// logger discards everything.
func SetupLogging(verbose bool) {
	mutex.Lock()
	defer mutex.Unlock()
	if !verbose {
		logger = zap.NewNop().Sugar()
		return
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	encoderConfig.ConsoleSeparator = " "
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(zapcore.AddSync(os.Stderr)),
		zapcore.DebugLevel,
	)
	logger = zap.New(core).Named("xref").Sugar()
}

// Logger returns the debug logger.
func Logger() *zap.SugaredLogger {
	mutex.Lock()
	defer mutex.Unlock()
	return logger
}
