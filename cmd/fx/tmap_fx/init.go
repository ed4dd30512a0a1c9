package tmap_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"koreatrip/internal/config"
	"koreatrip/internal/services"
	"koreatrip/pkg/metrics"
)

var Module = fx.Provide(provideTmapClient, providePixabayClient)

func provideTmapClient(cfg config.Config, log *zap.Logger, m *metrics.Collector) services.TmapService {
	client := services.NewTmapClient(cfg.TmapAppKey, cfg.TmapBaseURL, cfg.HTTPTimeout, cfg.GeocodeTTL, m)
	if !client.Enabled() {
		log.Warn("TMAP_APP_KEY not set, POIs will come from the fallback generator")
	}
	return client
}

func providePixabayClient(cfg config.Config, m *metrics.Collector) services.ImageSearcher {
	return services.NewPixabayClient(cfg.PixabayAPIKey, cfg.PixabayBaseURL, cfg.HTTPTimeout, m)
}
