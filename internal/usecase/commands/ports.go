package commands

import (
	"braceria-backend/internal/domain/reservation"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

// Notifier sends best-effort emails. Implementations must not block the caller.
type Notifier interface {
	NotifyCustomer(r *reservation.Reservation)
	NotifyRestaurant(r *reservation.Reservation)
	NotifyCancellation(c *reservation.Cancelled)
}

// Recorder counts booking outcomes.
type Recorder interface {
	ReservationCreated()
	ReservationRejected(reason string)
	ReservationCancelled(outcome string)
}

const (
	RejectValidation      = "validation"
	RejectDateUnavailable = "date_unavailable"
	RejectTimeUnavailable = "time_unavailable"
	RejectSlotTaken       = "slot_taken"
	RejectStorage         = "storage"

	CancelOutcomeCancelled = "cancelled"
	CancelOutcomeNotFound  = "not_found"
	CancelOutcomeError     = "error"
)
