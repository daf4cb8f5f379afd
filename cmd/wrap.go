package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sakinahapp/sakinah/internal/config"
	"github.com/sakinahapp/sakinah/internal/logging"
)

type runE func(cmd *cobra.Command, args []string) error

// wrap logs each command run with its duration and outcome.
func wrap(command string, fn runE) runE {
	return func(cmd *cobra.Command, args []string) error {
		log := commandLogger()
		start := time.Now()

		err := fn(cmd, args)

		fields := []zap.Field{zap.String("command", command), zap.Duration("took", time.Since(start))}
		if err != nil {
			log.Warn("command failed", append(fields, zap.Error(err))...)
		} else {
			log.Debug("command done", fields...)
		}
		_ = log.Sync()
		return err
	}
}

func commandLogger() *zap.Logger {
	cfg, err := config.Load()
	if err != nil {
		return zap.NewNop()
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		return zap.NewNop()
	}
	return log
}
