package image_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"koreatrip/internal/config"
	"koreatrip/internal/services"
	"koreatrip/pkg/metrics"
)

var Module = fx.Provide(provideImageService)

func provideImageService(cfg config.Config, tmap services.TmapService, pixabay services.ImageSearcher, log *zap.Logger, m *metrics.Collector) services.ImageServiceInterface {
	return services.NewImageService(tmap, pixabay, log, m, cfg.ImageConcurrency)
}
