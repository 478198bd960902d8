//go:build unit || e2e

package builder

import (
	"time"

	"braceria-backend/internal/domain/reservation"
	reqdto "braceria-backend/internal/handler/dto/request"
	"braceria-backend/internal/pkg/clock"
)

type ReservationBuilder struct {
	FirstName       string
	LastName        string
	PhoneNumber     string
	Email           string
	ReservationDate string
	ReservationTime string
	Guests          *int
	Cookie          bool
	Profiling       bool
	Promotional     bool
	AcceptAll       bool
	Now             time.Time
	Policy          reservation.Policy
}

func NewReservationBuilder() *ReservationBuilder {
	guests := 2
	return &ReservationBuilder{
		FirstName:       "Anna",
		LastName:        "Rossi",
		PhoneNumber:     "+393331234567",
		Email:           "anna.rossi@example.com",
		ReservationDate: "2030-06-15",
		ReservationTime: "20:00",
		Guests:          &guests,
		Cookie:          true,
		Now:             time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC),
		Policy: reservation.Policy{
			RestaurantID: "BRACERIA",
			PhoneRegion:  "IT",
		},
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithGuests(n int) *ReservationBuilder {
	b.Guests = &n
	return b
}

func (b *ReservationBuilder) WithDateTime(date, tod string) *ReservationBuilder {
	b.ReservationDate = date
	b.ReservationTime = tod
	return b
}

func (b *ReservationBuilder) WithProfiling(v bool) *ReservationBuilder {
	b.Profiling = v
	return b
}

// Build methods
func (b *ReservationBuilder) BuildInput() reservation.Input {
	return reservation.Input{
		FirstName:       b.FirstName,
		LastName:        b.LastName,
		PhoneNumber:     b.PhoneNumber,
		Email:           b.Email,
		ReservationDate: b.ReservationDate,
		ReservationTime: b.ReservationTime,
		Guests:          b.Guests,
		Consents: reservation.Consents{
			Cookie:      b.Cookie,
			Profiling:   b.Profiling,
			Promotional: b.Promotional,
			AcceptAll:   b.AcceptAll,
		},
	}
}

func (b *ReservationBuilder) BuildServices() *reservation.Services {
	return &reservation.Services{
		Clock:  clock.NewMockClock(b.Now),
		Policy: b.Policy,
	}
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	return reservation.NewReservation(b.BuildServices(), b.BuildInput())
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		FirstName:             b.FirstName,
		LastName:              b.LastName,
		PhoneNumber:           b.PhoneNumber,
		Email:                 b.Email,
		ReservationDate:       b.ReservationDate,
		ReservationTime:       b.ReservationTime,
		Guests:                b.Guests,
		CookieConsent:         b.Cookie,
		ProfilingConsent:      b.Profiling,
		PromotionalSMSConsent: b.Promotional,
		AcceptAll:             b.AcceptAll,
	}
}
