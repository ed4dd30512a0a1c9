package controllers_fx

import (
	"go.uber.org/fx"

	"koreatrip/internal/api"
	"koreatrip/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewRegionsController),
	fx.Provide(controllers.NewCoursesController),
	fx.Provide(controllers.NewImagesController),
	fx.Provide(api.NewRouter))
