//go:build unit

package converter

import (
	"testing"
	"time"

	"braceria-backend/internal/domain/schedule"
	"braceria-backend/internal/infra/query"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestDisabledTimeSlotRowsToDomain(t *testing.T) {
	day := schedule.NewDate(2030, time.June, 15)
	at := func(s string) pgtype.Time {
		return pgtype.Time{Microseconds: schedule.MustTimeOfDay(s).Microseconds(), Valid: true}
	}

	t.Run("rows keep order and the optional reason", func(t *testing.T) {
		rows := []query.DisabledTimeSlotRow{
			{StartTime: at("12:00"), EndTime: at("14:30")},
			{StartTime: at("19:00"), EndTime: at("21:00"), Reason: pgtype.Text{String: "evento privato", Valid: true}},
		}
		reason := "evento privato"
		want := []schedule.DisabledTimeSlot{
			{Date: day, Range: schedule.TimeRange{Start: schedule.MustTimeOfDay("12:00"), End: schedule.MustTimeOfDay("14:30")}},
			{Date: day, Range: schedule.TimeRange{Start: schedule.MustTimeOfDay("19:00"), End: schedule.MustTimeOfDay("21:00")}, Reason: &reason},
		}

		got := DisabledTimeSlotRowsToDomain(day, rows)

		if diff := cmp.Diff(want, got, cmp.AllowUnexported(schedule.Date{}, schedule.TimeOfDay{})); diff != "" {
			t.Errorf("slots mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no rows is an empty slice", func(t *testing.T) {
		got := DisabledTimeSlotRowsToDomain(day, nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
