// Package log builds the process-wide zap logger for repeaterd.
package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/meshforge/repeaterd/internal/logcapture"
)

// Setup creates the root logger from the configured level and format,
// mirrors every record into capture, and installs the logger globally
// so packages can use zap.S().Named(...). The returned function flushes
// buffered output and should be deferred by the caller.
func Setup(level, format string, capture *logcapture.Buffer) (func(), error) {
	var lvl zapcore.Level
	if err := lvl.Set(level); err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if format == "json" {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), lvl)

	opts := []zap.Option{zap.AddCaller()}
	if capture != nil {
		opts = append(opts, zap.Hooks(capture.Hook()))
	}

	logger := zap.New(core, opts...)
	undo := zap.ReplaceGlobals(logger)
	return func() {
		_ = logger.Sync()
		undo()
	}, nil
}
