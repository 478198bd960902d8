package response

import (
	"braceria-backend/internal/usecase/queries"
)

type DisabledTimeSlotResponse struct {
	StartTime string  `json:"start_time" example:"19:00:00"`
	EndTime   string  `json:"end_time" example:"21:00:00"`
	Reason    *string `json:"reason"`
}

type DisabledTimeSlotsResponse struct {
	Date              string                     `json:"date"`
	DateDisabled      bool                       `json:"date_disabled"`
	DisabledTimeSlots []DisabledTimeSlotResponse `json:"disabled_time_slots"`
}

func FromDayAvailabilityView(v *queries.DayAvailabilityView) *DisabledTimeSlotsResponse {
	slots := make([]DisabledTimeSlotResponse, len(v.DisabledTimeSlots))
	for i, s := range v.DisabledTimeSlots {
		slots[i] = DisabledTimeSlotResponse{
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Reason:    s.Reason,
		}
	}
	return &DisabledTimeSlotsResponse{
		Date:              v.Date,
		DateDisabled:      v.DateDisabled,
		DisabledTimeSlots: slots,
	}
}
