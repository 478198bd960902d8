package query

import (
	"context"
)

const createReservation = `-- name: CreateReservation :one
INSERT INTO gestionale_reservation (
    restaurant_id, first_name, last_name, phone_number, email, guests,
    reservation_date, reservation_time,
    cookie_consent, profiling_consent, promotional_sms_consent, accept_all,
    cancel_token_hash, created_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
)
RETURNING id
`

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) (int64, error) {
	row := db.QueryRow(ctx, createReservation,
		arg.RestaurantID,
		arg.FirstName,
		arg.LastName,
		arg.PhoneNumber,
		arg.Email,
		arg.Guests,
		arg.ReservationDate,
		arg.ReservationTime,
		arg.CookieConsent,
		arg.ProfilingConsent,
		arg.PromotionalSmsConsent,
		arg.AcceptAll,
		arg.CancelTokenHash,
		arg.CreatedAt,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

// A NULL token hash skips the token check.
const deleteReservation = `-- name: DeleteReservation :one
DELETE FROM gestionale_reservation
WHERE id = $1
  AND restaurant_id = $2
  AND ($3::text IS NULL OR cancel_token_hash = $3::text)
RETURNING id, first_name, last_name, email, phone_number, guests, reservation_date, reservation_time
`

func (q *Queries) DeleteReservation(ctx context.Context, db DBTX, arg DeleteReservationParams) (DeletedReservationRow, error) {
	row := db.QueryRow(ctx, deleteReservation, arg.ID, arg.RestaurantID, arg.CancelTokenHash)
	var i DeletedReservationRow
	err := row.Scan(
		&i.ID,
		&i.FirstName,
		&i.LastName,
		&i.Email,
		&i.PhoneNumber,
		&i.Guests,
		&i.ReservationDate,
		&i.ReservationTime,
	)
	return i, err
}
