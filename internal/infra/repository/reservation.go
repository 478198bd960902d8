package repository

import (
	"context"

	"braceria-backend/internal/domain/reservation"
	"braceria-backend/internal/infra"
	"braceria-backend/internal/infra/query"
	"braceria-backend/internal/infra/repository/converter"
	"braceria-backend/internal/pkg/pgconv"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db query.DBTX, arg query.CreateReservationParams) (int64, error)
	DeleteReservation(ctx context.Context, db query.DBTX, arg query.DeleteReservationParams) (query.DeletedReservationRow, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, tx query.DBTX, res *reservation.Reservation) (int64, error) {
	params := converter.ReservationToCreateParams(res)

	id, err := r.queries.CreateReservation(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) Delete(ctx context.Context, tx query.DBTX, id int64, restaurantID string, tokenHash *string) (*reservation.Cancelled, error) {
	row, err := r.queries.DeleteReservation(ctx, tx, query.DeleteReservationParams{
		ID:              id,
		RestaurantID:    restaurantID,
		CancelTokenHash: pgconv.StringPtrToPgtype(tokenHash),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to delete reservation", err)
	}
	return converter.DeletedRowToCancelled(row), nil
}
