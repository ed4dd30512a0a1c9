package course_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"koreatrip/internal/config"
	"koreatrip/internal/services"
	"koreatrip/pkg/metrics"
	"koreatrip/pkg/utils"
)

var Module = fx.Provide(provideGenerationService)

func provideGenerationService(
	cfg config.Config,
	regions services.RegionServiceInterface,
	pois services.POIServiceInterface,
	courses services.CourseServiceInterface,
	cache services.CourseCache,
	tmap services.TmapService,
	clock utils.Clock,
	log *zap.Logger,
	m *metrics.Collector,
) services.CourseGenerationServiceInterface {
	return services.NewCourseGenerationService(regions, pois, courses, cache, tmap, clock, log, m, cfg.BatchConcurrency)
}
