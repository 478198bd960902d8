package query

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type DisabledTimeSlotRow struct {
	StartTime pgtype.Time
	EndTime   pgtype.Time
	Reason    pgtype.Text
}

type ReservationExistsAtParams struct {
	RestaurantID    string
	ReservationDate pgtype.Date
	ReservationTime pgtype.Time
}

type CreateReservationParams struct {
	RestaurantID          string
	FirstName             string
	LastName              string
	PhoneNumber           string
	Email                 string
	Guests                int32
	ReservationDate       pgtype.Date
	ReservationTime       pgtype.Time
	CookieConsent         bool
	ProfilingConsent      bool
	PromotionalSmsConsent bool
	AcceptAll             bool
	CancelTokenHash       pgtype.Text
	CreatedAt             pgtype.Timestamptz
}

type DeleteReservationParams struct {
	ID              int64
	RestaurantID    string
	CancelTokenHash pgtype.Text
}

type DeletedReservationRow struct {
	ID              int64
	FirstName       string
	LastName        string
	Email           string
	PhoneNumber     string
	Guests          int32
	ReservationDate pgtype.Date
	ReservationTime pgtype.Time
}

type UpsertCustomerParams struct {
	PhoneNumber string
	FirstName   string
	LastName    string
}
