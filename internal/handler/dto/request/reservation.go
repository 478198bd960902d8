package request

import (
	"braceria-backend/internal/domain/reservation"
)

// CreateReservationRequest mirrors the booking form posted by the website.
// Validation happens in the domain so that the error order stays fixed.
type CreateReservationRequest struct {
	FirstName             string `json:"first_name"`
	LastName              string `json:"last_name"`
	PhoneNumber           string `json:"phone_number"`
	Email                 string `json:"email"`
	ReservationDate       string `json:"reservation_date" example:"2025-06-15"`
	ReservationTime       string `json:"reservation_time" example:"20:00"`
	Guests                *int   `json:"guests,omitempty"`
	CookieConsent         any    `json:"cookie_consent" swaggertype:"boolean"`
	ProfilingConsent      bool   `json:"profiling_consent"`
	PromotionalSMSConsent bool   `json:"promotional_sms_consent"`
	AcceptAll             bool   `json:"accept_all"`
}

// CookieConsentField is decoded on its own when the full form does not bind,
// so a missing consent is still reported ahead of type errors in other fields.
type CookieConsentField struct {
	CookieConsent any `json:"cookie_consent"`
}

func (f CookieConsentField) Granted() bool {
	return consentGranted(f.CookieConsent)
}

// cookie_consent must be the JSON literal true; "true" or 1 do not count.
func consentGranted(v any) bool {
	granted, _ := v.(bool)
	return granted
}

func (r *CreateReservationRequest) ToInput() reservation.Input {
	consent := consentGranted(r.CookieConsent)
	return reservation.Input{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		PhoneNumber:     r.PhoneNumber,
		Email:           r.Email,
		ReservationDate: r.ReservationDate,
		ReservationTime: r.ReservationTime,
		Guests:          r.Guests,
		Consents: reservation.Consents{
			Cookie:      consent,
			Profiling:   r.ProfilingConsent,
			Promotional: r.PromotionalSMSConsent,
			AcceptAll:   r.AcceptAll,
		},
	}
}
