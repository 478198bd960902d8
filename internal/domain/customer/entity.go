package customer

import (
	"errors"

	"braceria-backend/internal/domain/reservation"
)

var ErrUnknownUpsertPolicy = errors.New("unknown customer upsert policy")

// UpsertPolicy decides what happens to stored names when a known phone number books again.
type UpsertPolicy string

const (
	RefreshNames UpsertPolicy = "refresh_names"
	KeepNames    UpsertPolicy = "keep_names"
)

func ParseUpsertPolicy(s string) (UpsertPolicy, error) {
	switch p := UpsertPolicy(s); p {
	case RefreshNames, KeepNames:
		return p, nil
	default:
		return "", ErrUnknownUpsertPolicy
	}
}

func (p UpsertPolicy) OverwritesNames() bool { return p == RefreshNames }

// Customer is keyed by normalized phone number.
type Customer struct {
	PhoneNumber string
	FirstName   string
	LastName    string
}

// FromReservation returns the profile to record, or false when the guest did not consent to profiling.
func FromReservation(r *reservation.Reservation) (Customer, bool) {
	if !r.WantsCustomerProfile() {
		return Customer{}, false
	}
	return Customer{
		PhoneNumber: r.PhoneNumber(),
		FirstName:   r.FirstName(),
		LastName:    r.LastName(),
	}, true
}
