package pois_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"koreatrip/internal/services"
	"koreatrip/pkg/metrics"
	"koreatrip/pkg/utils"
)

var Module = fx.Provide(providePoiService, provideCourseService)

func providePoiService(tmap services.TmapService, rng utils.RandomSource, log *zap.Logger, m *metrics.Collector) services.POIServiceInterface {
	return services.NewPoiService(tmap, rng, log, m)
}

func provideCourseService(clock utils.Clock, rng utils.RandomSource) services.CourseServiceInterface {
	return services.NewCourseService(clock, rng)
}
