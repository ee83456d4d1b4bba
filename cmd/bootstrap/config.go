package bootstrap

import (
	"go.uber.org/fx"

	"event-booking-api/internal/pkg/config"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
