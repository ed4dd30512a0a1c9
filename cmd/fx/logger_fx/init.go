package logger_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"koreatrip/internal/config"
	"koreatrip/pkg/logger"
)

var Module = fx.Options(
	fx.Provide(provideLogger),
	fx.Invoke(registerLogger),
)

func provideLogger(cfg config.Config) (*zap.Logger, error) {
	return logger.New(cfg.ServiceName, cfg.ServiceVersion, cfg.LogLevel, cfg.LogFormat)
}

// registerLogger makes zap.L() usable from helpers without injection and
// flushes buffered entries on shutdown.
func registerLogger(lc fx.Lifecycle, log *zap.Logger) {
	restore := zap.ReplaceGlobals(log)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = log.Sync()
			restore()
			return nil
		},
	})
}
