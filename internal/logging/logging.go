// Package logging builds the zap logger for the CLI.
//
// Logs go to a file, never to stdout, so command output stays clean.
// User-facing messages belong to internal/ui.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sakinahapp/sakinah/internal/config"
)

// New builds a logger from cfg. An empty cfg.File means the default log
// path under the XDG state directory.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(orDefault(cfg.Level, "info"))
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	path := cfg.File
	if path == "" {
		path = config.GetPaths().LogFile
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	core := zapcore.NewCore(newEncoder(cfg.Format), zapcore.AddSync(f), level)
	return zap.New(core), nil
}

// NewWriter builds a logger over an arbitrary sink. Used by tests.
func NewWriter(w zapcore.WriteSyncer, level zapcore.Level, format string) *zap.Logger {
	return zap.New(zapcore.NewCore(newEncoder(format), w, level))
}

// newEncoder creates JSON or console encoder.
func newEncoder(format string) zapcore.Encoder {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	if format == "console" {
		return zapcore.NewConsoleEncoder(encoderCfg)
	}
	return zapcore.NewJSONEncoder(encoderCfg)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
