package components

import (
	"braceria-backend/internal/domain/customer"
	"braceria-backend/internal/domain/reservation"
	"braceria-backend/internal/pkg/clock"
	"braceria-backend/internal/pkg/config"
	"braceria-backend/internal/usecase/commands"
	"braceria-backend/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewClock,
	NewReservationPolicy,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
	),
)

func NewClock(cfg config.Config) (clock.Clock, error) {
	return clock.LoadZonedClock(cfg.Restaurant.TimeZone)
}

func NewReservationPolicy(cfg config.Config) (commands.ReservationPolicy, error) {
	upsert, err := customer.ParseUpsertPolicy(cfg.Reservation.CustomerUpsert)
	if err != nil {
		return commands.ReservationPolicy{}, err
	}
	return commands.ReservationPolicy{
		Domain: reservation.Policy{
			RestaurantID: cfg.Restaurant.ID,
			PhoneRegion:  cfg.Restaurant.PhoneRegion,
			MaxGuests:    cfg.Reservation.MaxGuests,
		},
		ExclusiveSlots:      cfg.Reservation.ExclusiveSlots,
		CustomerUpsert:      upsert,
		CancelTokenRequired: cfg.Reservation.CancelTokenRequired,
	}, nil
}
