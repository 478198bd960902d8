package reservation

import (
	"strings"
	"time"

	"braceria-backend/internal/domain/schedule"
	"braceria-backend/internal/pkg/clock"
	"braceria-backend/internal/pkg/phone"
)

type Services struct {
	Clock  clock.Clock
	Policy Policy
}

// Input is the raw booking request as received from the client.
type Input struct {
	FirstName       string
	LastName        string
	PhoneNumber     string
	Email           string
	ReservationDate string
	ReservationTime string
	Guests          *int
	Consents        Consents
}

type Reservation struct {
	id           int64
	restaurantID string
	firstName    string
	lastName     string
	phoneNumber  string
	email        Email
	guests       Guests
	date         schedule.Date
	time         schedule.TimeOfDay
	consents     Consents
	cancelToken  CancelToken
	createdAt    time.Time
}

// NewReservation validates in a fixed order and stops at the first failure:
// consent, required fields, formats, guests.
func NewReservation(services *Services, in Input) (*Reservation, error) {
	if !in.Consents.Cookie {
		return nil, ErrConsentRequired
	}

	firstName := strings.TrimSpace(in.FirstName)
	lastName := strings.TrimSpace(in.LastName)
	if firstName == "" || lastName == "" ||
		strings.TrimSpace(in.PhoneNumber) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.ReservationDate) == "" ||
		strings.TrimSpace(in.ReservationTime) == "" {
		return nil, ErrMissingFields
	}

	date, err := schedule.ParseDate(in.ReservationDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	tod, err := schedule.ParseTimeOfDay(in.ReservationTime)
	if err != nil {
		return nil, ErrInvalidTime
	}
	email, err := NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	guests, err := NewGuests(in.Guests, services.Policy.MaxGuests)
	if err != nil {
		return nil, err
	}

	return &Reservation{
		restaurantID: services.Policy.RestaurantID,
		firstName:    firstName,
		lastName:     lastName,
		phoneNumber:  phone.Normalize(in.PhoneNumber, services.Policy.PhoneRegion),
		email:        email,
		guests:       guests,
		date:         date,
		time:         tod,
		consents:     in.Consents,
		cancelToken:  NewCancelToken(),
		createdAt:    services.Clock.Now(),
	}, nil
}

// AssignID records the identifier generated by the store.
func (r *Reservation) AssignID(id int64) { r.id = id }

func (r *Reservation) ID() int64                  { return r.id }
func (r *Reservation) RestaurantID() string       { return r.restaurantID }
func (r *Reservation) FirstName() string          { return r.firstName }
func (r *Reservation) LastName() string           { return r.lastName }
func (r *Reservation) PhoneNumber() string        { return r.phoneNumber }
func (r *Reservation) Email() Email               { return r.email }
func (r *Reservation) Guests() Guests             { return r.guests }
func (r *Reservation) Date() schedule.Date        { return r.date }
func (r *Reservation) Time() schedule.TimeOfDay   { return r.time }
func (r *Reservation) Consents() Consents         { return r.consents }
func (r *Reservation) CancelToken() CancelToken   { return r.cancelToken }
func (r *Reservation) CreatedAt() time.Time       { return r.createdAt }
func (r *Reservation) FullName() string           { return r.firstName + " " + r.lastName }
func (r *Reservation) WantsCustomerProfile() bool { return r.consents.Profiling }

// Cancelled is what remains of a reservation after it has been deleted.
type Cancelled struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Guests    int
	Date      schedule.Date
	Time      schedule.TimeOfDay
}
