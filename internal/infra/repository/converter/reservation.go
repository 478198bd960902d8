package converter

import (
	"braceria-backend/internal/domain/reservation"
	"braceria-backend/internal/infra/query"
	"braceria-backend/internal/pkg/pgconv"
)

func ReservationToCreateParams(res *reservation.Reservation) query.CreateReservationParams {
	consents := res.Consents()

	return query.CreateReservationParams{
		RestaurantID:          res.RestaurantID(),
		FirstName:             res.FirstName(),
		LastName:              res.LastName(),
		PhoneNumber:           res.PhoneNumber(),
		Email:                 res.Email().String(),
		Guests:                int32(res.Guests().Value()), // #nosec G115 -- NewGuests caps at MaxInt32
		ReservationDate:       pgconv.DateToPgtype(res.Date()),
		ReservationTime:       pgconv.TimeOfDayToPgtype(res.Time()),
		CookieConsent:         consents.Cookie,
		ProfilingConsent:      consents.Profiling,
		PromotionalSmsConsent: consents.Promotional,
		AcceptAll:             consents.AcceptAll,
		CancelTokenHash:       pgconv.StringToPgtype(res.CancelToken().Hash()),
		CreatedAt:             pgconv.TimeToPgtype(res.CreatedAt()),
	}
}

func DeletedRowToCancelled(row query.DeletedReservationRow) *reservation.Cancelled {
	return &reservation.Cancelled{
		ID:        row.ID,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Email:     row.Email,
		Phone:     row.PhoneNumber,
		Guests:    int(row.Guests),
		Date:      pgconv.DateFromPgtype(row.ReservationDate),
		Time:      pgconv.TimeOfDayFromPgtype(row.ReservationTime),
	}
}
