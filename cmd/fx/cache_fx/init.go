package cache_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"koreatrip/internal/config"
	"koreatrip/internal/infra"
	"koreatrip/internal/services"
	"koreatrip/pkg/metrics"
	"koreatrip/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(provideCourseCache),
	fx.Invoke(startSweeper),
)

func provideCourseCache(lc fx.Lifecycle, cfg config.Config, clock utils.Clock, log *zap.Logger, m *metrics.Collector) (services.CourseCache, error) {
	switch cfg.CourseCacheBackend {
	case config.CacheBackendRedis:
		client, err := infra.InitRedis(context.Background(), cfg, log)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				infra.CloseRedis(client, log)
				return nil
			},
		})
		return services.NewRedisCourseCache(client, cfg.RedisPrefix, cfg.CourseCacheTTL, log, m), nil
	case config.CacheBackendMemory, "":
		return services.NewMemoryCourseCache(cfg.CourseCacheTTL, cfg.CourseCacheMaxEntries, clock, m), nil
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", utils.ErrCacheBackend, cfg.CourseCacheBackend)
	}
}

func startSweeper(lc fx.Lifecycle, cfg config.Config, cache services.CourseCache, log *zap.Logger) {
	sweeper := services.NewCourseCacheSweeper(cache, cfg.CourseCacheSweepInterval, log)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// ctx only lives for the start phase
			sweeper.Start(context.Background())
			log.Info("Course cache sweeper started", zap.Duration("interval", cfg.CourseCacheSweepInterval))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			sweeper.Stop()
			return nil
		},
	})
}
