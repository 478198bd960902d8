package queries

// DisabledTimeSlotView is a blocked window rendered as Postgres TIME strings (HH:MM:SS).
type DisabledTimeSlotView struct {
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Reason    *string `json:"reason"`
}

// DayAvailabilityView answers "what is blocked on this date".
type DayAvailabilityView struct {
	Date              string                 `json:"date"`
	DateDisabled      bool                   `json:"date_disabled"`
	DisabledTimeSlots []DisabledTimeSlotView `json:"disabled_time_slots"`
}
