package reservation

import (
	"errors"

	"braceria-backend/internal/pkg/errs"
)

// All validation failures carry the errs.ErrValidation mark.
var (
	ErrConsentRequired = errs.Mark(errors.New("consent required"), errs.ErrValidation)
	ErrMissingFields   = errs.Mark(errors.New("missing fields"), errs.ErrValidation)
	ErrInvalidDate     = errs.Mark(errors.New("invalid reservation date"), errs.ErrValidation)
	ErrInvalidTime     = errs.Mark(errors.New("invalid reservation time"), errs.ErrValidation)
	ErrInvalidEmail    = errs.Mark(errors.New("invalid email"), errs.ErrValidation)
	ErrInvalidGuests   = errs.Mark(errors.New("invalid number of guests"), errs.ErrValidation)
)

type Consents struct {
	Cookie      bool
	Profiling   bool
	Promotional bool
	AcceptAll   bool
}

// Policy holds the deployment-specific rules applied while building a reservation.
type Policy struct {
	RestaurantID string
	PhoneRegion  string
	MaxGuests    int // 0 means unlimited
}
