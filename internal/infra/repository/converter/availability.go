package converter

import (
	"braceria-backend/internal/domain/schedule"
	"braceria-backend/internal/infra/query"
	"braceria-backend/internal/pkg/pgconv"
)

func DisabledTimeSlotRowsToDomain(date schedule.Date, rows []query.DisabledTimeSlotRow) []schedule.DisabledTimeSlot {
	result := make([]schedule.DisabledTimeSlot, len(rows))
	for i, row := range rows {
		result[i] = schedule.DisabledTimeSlot{
			Date: date,
			Range: schedule.TimeRange{
				Start: pgconv.TimeOfDayFromPgtype(row.StartTime),
				End:   pgconv.TimeOfDayFromPgtype(row.EndTime),
			},
			Reason: pgconv.StringPtrFromPgtype(row.Reason),
		}
	}
	return result
}
