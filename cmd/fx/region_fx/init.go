package region_fx

import (
	"go.uber.org/fx"

	"koreatrip/internal/repositories"
	"koreatrip/internal/services"
)

var Module = fx.Provide(repositories.NewRegionRepository, provideRegionService)

func provideRegionService(regionRepo repositories.RegionRepository) services.RegionServiceInterface {
	return services.NewRegionService(regionRepo)
}
