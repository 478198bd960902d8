package schedule

// DisabledTimeSlot is an administrator-maintained window in which no booking is accepted.
type DisabledTimeSlot struct {
	Date   Date
	Range  TimeRange
	Reason *string
}

func (s DisabledTimeSlot) Blocks(t TimeOfDay) bool {
	return s.Range.Contains(t)
}

// FirstBlocking returns the first slot whose window contains t.
func FirstBlocking(slots []DisabledTimeSlot, t TimeOfDay) (DisabledTimeSlot, bool) {
	for _, s := range slots {
		if s.Blocks(t) {
			return s, true
		}
	}
	return DisabledTimeSlot{}, false
}
