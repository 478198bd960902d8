package repository

import (
	"context"

	"braceria-backend/internal/domain/schedule"
	"braceria-backend/internal/infra"
	"braceria-backend/internal/infra/query"
	"braceria-backend/internal/infra/repository/converter"
	"braceria-backend/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type AvailabilityQueries interface {
	DisabledDateExists(ctx context.Context, db query.DBTX, date pgtype.Date) (bool, error)
	ListDisabledTimeSlotsByDate(ctx context.Context, db query.DBTX, date pgtype.Date) ([]query.DisabledTimeSlotRow, error)
	ReservationExistsAt(ctx context.Context, db query.DBTX, arg query.ReservationExistsAtParams) (bool, error)
}

type AvailabilityRepository struct {
	queries AvailabilityQueries
}

func NewAvailabilityRepository(queries AvailabilityQueries) *AvailabilityRepository {
	return &AvailabilityRepository{
		queries: queries,
	}
}

func (r *AvailabilityRepository) IsDateDisabled(ctx context.Context, tx query.DBTX, date schedule.Date) (bool, error) {
	exists, err := r.queries.DisabledDateExists(ctx, tx, pgconv.DateToPgtype(date))
	if err != nil {
		return false, infra.WrapRepoErr("failed to check disabled date", err)
	}
	return exists, nil
}

func (r *AvailabilityRepository) DisabledTimeSlots(ctx context.Context, tx query.DBTX, date schedule.Date) ([]schedule.DisabledTimeSlot, error) {
	rows, err := r.queries.ListDisabledTimeSlotsByDate(ctx, tx, pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list disabled time slots", err)
	}
	return converter.DisabledTimeSlotRowsToDomain(date, rows), nil
}

func (r *AvailabilityRepository) ReservationExistsAt(ctx context.Context, tx query.DBTX, restaurantID string, date schedule.Date, at schedule.TimeOfDay) (bool, error) {
	exists, err := r.queries.ReservationExistsAt(ctx, tx, query.ReservationExistsAtParams{
		RestaurantID:    restaurantID,
		ReservationDate: pgconv.DateToPgtype(date),
		ReservationTime: pgconv.TimeOfDayToPgtype(at),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check existing reservation", err)
	}
	return exists, nil
}
