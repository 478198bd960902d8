package query

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const disabledDateExists = `-- name: DisabledDateExists :one
SELECT EXISTS (
    SELECT 1 FROM gestionale_disableddate WHERE date = $1
)
`

func (q *Queries) DisabledDateExists(ctx context.Context, db DBTX, date pgtype.Date) (bool, error) {
	row := db.QueryRow(ctx, disabledDateExists, date)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const listDisabledTimeSlotsByDate = `-- name: ListDisabledTimeSlotsByDate :many
SELECT start_time, end_time, reason
FROM gestionale_disabledtimeslot
WHERE date = $1
ORDER BY start_time, end_time
`

func (q *Queries) ListDisabledTimeSlotsByDate(ctx context.Context, db DBTX, date pgtype.Date) ([]DisabledTimeSlotRow, error) {
	rows, err := db.Query(ctx, listDisabledTimeSlotsByDate, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []DisabledTimeSlotRow{}
	for rows.Next() {
		var i DisabledTimeSlotRow
		if err := rows.Scan(&i.StartTime, &i.EndTime, &i.Reason); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const reservationExistsAt = `-- name: ReservationExistsAt :one
SELECT EXISTS (
    SELECT 1 FROM gestionale_reservation
    WHERE restaurant_id = $1 AND reservation_date = $2 AND reservation_time = $3
)
`

func (q *Queries) ReservationExistsAt(ctx context.Context, db DBTX, arg ReservationExistsAtParams) (bool, error) {
	row := db.QueryRow(ctx, reservationExistsAt, arg.RestaurantID, arg.ReservationDate, arg.ReservationTime)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}
