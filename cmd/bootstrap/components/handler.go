package components

import (
	"go.uber.org/fx"

	"event-booking-api/internal/handler"
	"event-booking-api/internal/handler/api"
	"event-booking-api/internal/handler/middleware"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewTicketHandler,
		api.NewHotelHandler,
		api.NewPaymentHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
