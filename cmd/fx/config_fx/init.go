package config_fx

import (
	"go.uber.org/fx"

	"koreatrip/internal/config"
	"koreatrip/pkg/utils"
)

var Module = fx.Provide(config.Load, provideClock, provideRandomSource)

func provideClock() utils.Clock {
	return utils.SystemClock{}
}

func provideRandomSource(cfg config.Config) utils.RandomSource {
	return utils.NewRandomSource(cfg.RandomSeed)
}
