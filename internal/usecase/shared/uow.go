package shared

import (
	"context"

	"braceria-backend/internal/domain/customer"
	"braceria-backend/internal/domain/reservation"
	"braceria-backend/internal/domain/schedule"
	"braceria-backend/internal/infra/query"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

type UnitOfWork interface {
	// Within: Serializable transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
}

type Tx interface {
	Availability() AvailabilityRepository
	Reservations() ReservationRepository
	Customers() CustomerRepository
	DB() query.DBTX
}

type AvailabilityRepository interface {
	IsDateDisabled(ctx context.Context, tx query.DBTX, date schedule.Date) (bool, error)
	DisabledTimeSlots(ctx context.Context, tx query.DBTX, date schedule.Date) ([]schedule.DisabledTimeSlot, error)
	ReservationExistsAt(ctx context.Context, tx query.DBTX, restaurantID string, date schedule.Date, at schedule.TimeOfDay) (bool, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx query.DBTX, res *reservation.Reservation) (int64, error)
	// Delete removes the reservation; a nil tokenHash skips the token check.
	Delete(ctx context.Context, tx query.DBTX, id int64, restaurantID string, tokenHash *string) (*reservation.Cancelled, error)
}

type CustomerRepository interface {
	Upsert(ctx context.Context, tx query.DBTX, c customer.Customer, policy customer.UpsertPolicy) error
}
