package schedule

import "errors"

var (
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidTimeOfDay = errors.New("invalid time, expected HH:MM or HH:MM:SS")
	ErrInvalidRange     = errors.New("time range end must be after start")
)
