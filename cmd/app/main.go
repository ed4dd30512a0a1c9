package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"koreatrip/cmd/fx/cache_fx"
	"koreatrip/cmd/fx/config_fx"
	"koreatrip/cmd/fx/controllers_fx"
	"koreatrip/cmd/fx/course_fx"
	"koreatrip/cmd/fx/image_fx"
	"koreatrip/cmd/fx/logger_fx"
	"koreatrip/cmd/fx/metrics_fx"
	"koreatrip/cmd/fx/pois_fx"
	"koreatrip/cmd/fx/region_fx"
	"koreatrip/cmd/fx/tmap_fx"
	"koreatrip/cmd/fx/tracing_fx"
	"koreatrip/internal/config"
)

func main() {
	// a missing .env is fine, the environment may already be populated
	_ = godotenv.Load()

	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		metrics_fx.Module,
		tracing_fx.Module,
		region_fx.Module,
		tmap_fx.Module,
		pois_fx.Module,
		cache_fx.Module,
		course_fx.Module,
		image_fx.Module,
		controllers_fx.Module,

		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("Starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
