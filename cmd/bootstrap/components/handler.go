package components

import (
	"braceria-backend/internal/handler"
	"braceria-backend/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSystemHandler,
		api.NewAvailabilityHandler,
		api.NewReservationHandler,
		func(s *api.SystemHandler, a *api.AvailabilityHandler, r *api.ReservationHandler) handler.Handlers {
			return handler.Handlers{System: s, Availability: a, Reservation: r}
		},
	),
	fx.Invoke(handler.NewRouter),
)
