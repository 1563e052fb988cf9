package bootstrap

import (
	"neko-hotel/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.StaffConfig {
			return cfg.Staff
		},
	),
)
