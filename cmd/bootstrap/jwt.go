package bootstrap

import (
	"go.uber.org/fx"

	"event-booking-api/internal/pkg/clock"
	"event-booking-api/internal/pkg/config"
	"event-booking-api/internal/pkg/jwt"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessTokenDuration, cfg.JWT.RefreshTokenDuration, clk)
}
