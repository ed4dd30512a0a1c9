package tracing_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"koreatrip/internal/config"
	"koreatrip/internal/infra"
)

var Module = fx.Invoke(registerTracing)

func registerTracing(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) error {
	shutdown, err := infra.InitTracing(cfg.ServiceName, cfg.ServiceVersion, cfg.JaegerEndpoint)
	if err != nil {
		return err
	}
	if cfg.JaegerEndpoint != "" {
		log.Info("Tracing enabled", zap.String("jaeger_endpoint", cfg.JaegerEndpoint))
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})
	return nil
}
