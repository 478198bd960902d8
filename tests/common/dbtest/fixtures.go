//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func DisableDate(t *testing.T, db DBLike, date string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO gestionale_disableddate (date) VALUES ($1::date) ON CONFLICT (date) DO NOTHING", date)
	require.NoError(t, err)
}

// reason may be empty for a slot without a note
func DisableTimeSlot(t *testing.T, db DBLike, date, start, end, reason string) {
	t.Helper()

	var r *string
	if reason != "" {
		r = &reason
	}
	_, err := db.Exec(context.Background(),
		"INSERT INTO gestionale_disabledtimeslot (date, start_time, end_time, reason) VALUES ($1::date, $2::time, $3::time, $4)",
		date, start, end, r)
	require.NoError(t, err)
}

func CountReservations(t *testing.T, db DBLike, date, at string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM gestionale_reservation WHERE reservation_date = $1::date AND reservation_time = $2::time",
		date, at).Scan(&n)
	require.NoError(t, err)
	return n
}

func ReservationExists(t *testing.T, db DBLike, id int64) bool {
	t.Helper()

	var exists bool
	err := db.QueryRow(context.Background(),
		"SELECT EXISTS (SELECT 1 FROM gestionale_reservation WHERE id = $1)", id).Scan(&exists)
	require.NoError(t, err)
	return exists
}

// returns numero_prenotazioni, or 0 when the customer row is absent
func CustomerBookings(t *testing.T, db DBLike, phone string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE((SELECT numero_prenotazioni FROM gestionale_customer WHERE phone_number = $1), 0)",
		phone).Scan(&n)
	require.NoError(t, err)
	return n
}

func CustomerNames(t *testing.T, db DBLike, phone string) (string, string) {
	t.Helper()

	var first, last string
	err := db.QueryRow(context.Background(),
		"SELECT first_name, last_name FROM gestionale_customer WHERE phone_number = $1", phone).Scan(&first, &last)
	require.NoError(t, err)
	return first, last
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all application tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
