package queries

import (
	"context"
	"errors"
	"strings"

	"braceria-backend/internal/domain/schedule"
	"braceria-backend/internal/pkg/errs"
)

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability.go -package=queriesmock

var (
	ErrDateRequired = errs.Mark(errors.New("date required"), errs.ErrValidation)
	ErrInvalidDate  = errs.Mark(errors.New("invalid date"), errs.ErrValidation)
)

type AvailabilityReadStore interface {
	// DayAvailability reads the disabled flag and the slots of one date in a single snapshot.
	DayAvailability(ctx context.Context, date schedule.Date) (disabled bool, slots []schedule.DisabledTimeSlot, err error)
}

type AvailabilityQueries interface {
	DisabledTimeSlots(ctx context.Context, rawDate string) (*DayAvailabilityView, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
}

func NewAvailabilityQueries(store AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store}
}

func (q *availabilityQueriesImpl) DisabledTimeSlots(ctx context.Context, rawDate string) (*DayAvailabilityView, error) {
	if strings.TrimSpace(rawDate) == "" {
		return nil, ErrDateRequired
	}
	date, err := schedule.ParseDate(rawDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	disabled, slots, err := q.store.DayAvailability(ctx, date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	views := make([]DisabledTimeSlotView, len(slots))
	for i, s := range slots {
		views[i] = DisabledTimeSlotView{
			StartTime: s.Range.Start.String(),
			EndTime:   s.Range.End.String(),
			Reason:    s.Reason,
		}
	}

	return &DayAvailabilityView{
		Date:              date.String(),
		DateDisabled:      disabled,
		DisabledTimeSlots: views,
	}, nil
}
