package readstore

import (
	"context"

	"braceria-backend/internal/domain/schedule"
	"braceria-backend/internal/infra"
	"braceria-backend/internal/infra/query"
	"braceria-backend/internal/infra/repository/converter"
	"braceria-backend/internal/pkg/pgconv"
	"braceria-backend/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/readstore/availability.go -package=readstoremock

type AvailabilityReadQueries interface {
	DisabledDateExists(ctx context.Context, db query.DBTX, date pgtype.Date) (bool, error)
	ListDisabledTimeSlotsByDate(ctx context.Context, db query.DBTX, date pgtype.Date) ([]query.DisabledTimeSlotRow, error)
}

type AvailabilityReadStore struct {
	queries AvailabilityReadQueries
	uow     shared.UnitOfWork
}

func NewAvailabilityReadStore(queries *query.Queries, uow shared.UnitOfWork) *AvailabilityReadStore {
	return newAvailabilityReadStore(queries, uow)
}

func newAvailabilityReadStore(queries AvailabilityReadQueries, uow shared.UnitOfWork) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		queries: queries,
		uow:     uow,
	}
}

// DayAvailability reads both tables inside one read-only transaction so the
// flag and the slot list describe the same snapshot.
func (s *AvailabilityReadStore) DayAvailability(ctx context.Context, date schedule.Date) (bool, []schedule.DisabledTimeSlot, error) {
	var (
		disabled bool
		slots    []schedule.DisabledTimeSlot
	)
	pgDate := pgconv.DateToPgtype(date)

	err := s.uow.WithinReadOnly(ctx, func(ctx context.Context, db query.DBTX) error {
		var err error
		disabled, err = s.queries.DisabledDateExists(ctx, db, pgDate)
		if err != nil {
			return infra.WrapRepoErr("failed to check disabled date", err)
		}

		rows, err := s.queries.ListDisabledTimeSlotsByDate(ctx, db, pgDate)
		if err != nil {
			return infra.WrapRepoErr("failed to list disabled time slots", err)
		}
		slots = converter.DisabledTimeSlotRowsToDomain(date, rows)
		return nil
	})
	if err != nil {
		return false, nil, err
	}
	return disabled, slots, nil
}
