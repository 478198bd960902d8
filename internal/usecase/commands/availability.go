package commands

import (
	"context"

	"braceria-backend/internal/domain/schedule"
	"braceria-backend/internal/usecase/shared"
)

// AvailabilityChecker answers blocking questions against the caller's transaction,
// so the answers hold until that transaction commits.
type AvailabilityChecker struct {
	tx shared.Tx
}

func NewAvailabilityChecker(tx shared.Tx) *AvailabilityChecker {
	return &AvailabilityChecker{tx: tx}
}

func (c *AvailabilityChecker) IsDateBlocked(ctx context.Context, date schedule.Date) (bool, error) {
	return c.tx.Availability().IsDateDisabled(ctx, c.tx.DB(), date)
}

// IsSlotBlocked returns the first disabled slot containing t, if any.
func (c *AvailabilityChecker) IsSlotBlocked(ctx context.Context, date schedule.Date, t schedule.TimeOfDay) (bool, *schedule.DisabledTimeSlot, error) {
	slots, err := c.tx.Availability().DisabledTimeSlots(ctx, c.tx.DB(), date)
	if err != nil {
		return false, nil, err
	}
	blocking, ok := schedule.FirstBlocking(slots, t)
	if !ok {
		return false, nil, nil
	}
	return true, &blocking, nil
}

func (c *AvailabilityChecker) IsSlotTaken(ctx context.Context, restaurantID string, date schedule.Date, t schedule.TimeOfDay) (bool, error) {
	return c.tx.Availability().ReservationExistsAt(ctx, c.tx.DB(), restaurantID, date, t)
}
