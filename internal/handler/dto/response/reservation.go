package response

import (
	"braceria-backend/internal/domain/reservation"
)

const ReservationConfirmedMessage = "Prenotazione confermata"

type ReservationData struct {
	ReservationID   int64  `json:"reservation_id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	ReservationDate string `json:"reservation_date" example:"2025-06-15"`
	ReservationTime string `json:"reservation_time" example:"20:00"`
	Guests          int    `json:"guests"`
}

type CreateReservationResponse struct {
	Success bool            `json:"success"`
	ID      int64           `json:"id"`
	Message string          `json:"message"`
	Data    ReservationData `json:"data"`
}

func FromReservation(r *reservation.Reservation) *CreateReservationResponse {
	return &CreateReservationResponse{
		Success: true,
		ID:      r.ID(),
		Message: ReservationConfirmedMessage,
		Data: ReservationData{
			ReservationID:   r.ID(),
			FirstName:       r.FirstName(),
			LastName:        r.LastName(),
			ReservationDate: r.Date().String(),
			ReservationTime: r.Time().HHMM(),
			Guests:          r.Guests().Value(),
		},
	}
}
