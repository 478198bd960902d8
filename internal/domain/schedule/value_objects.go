package schedule

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"

	microsPerSecond = int64(time.Second / time.Microsecond)
	microsPerDay    = 24 * 60 * 60 * microsPerSecond
)

// Date is a calendar day without time zone semantics.
type Date struct {
	t time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{t: t}, nil
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf drops the clock part of t, keeping the calendar day as seen in t's location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) Time() time.Time { return d.t }
func (d Date) IsZero() bool    { return d.t.IsZero() }
func (d Date) String() string  { return d.t.Format(DateLayout) }

// TimeOfDay is a wall-clock time with microsecond precision, matching Postgres TIME.
type TimeOfDay struct {
	micros int64
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimeOfDay(t.Hour(), t.Minute(), t.Second())
		}
	}
	return TimeOfDay{}, ErrInvalidTimeOfDay
}

func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	micros := (int64(hour)*3600 + int64(minute)*60 + int64(second)) * microsPerSecond
	return TimeOfDay{micros: micros}, nil
}

func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(fmt.Sprintf("schedule: bad time of day %q", s))
	}
	return t
}

// TimeOfDayFromMicroseconds accepts the representation pgx uses for TIME columns.
// 24:00:00 is clamped to the last representable instant of the day.
func TimeOfDayFromMicroseconds(us int64) TimeOfDay {
	if us < 0 {
		us = 0
	}
	if us >= microsPerDay {
		us = microsPerDay - 1
	}
	return TimeOfDay{micros: us}
}

func (t TimeOfDay) Microseconds() int64 { return t.micros }

func (t TimeOfDay) Before(o TimeOfDay) bool { return t.micros < o.micros }

func (t TimeOfDay) clock() (h, m, s int) {
	secs := t.micros / microsPerSecond
	return int(secs / 3600), int(secs % 3600 / 60), int(secs % 60)
}

// String renders HH:MM:SS, the format Postgres uses for TIME values.
func (t TimeOfDay) String() string {
	h, m, s := t.clock()
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func (t TimeOfDay) HHMM() string {
	h, m, _ := t.clock()
	return fmt.Sprintf("%02d:%02d", h, m)
}

// TimeRange is the half-open interval [Start, End).
type TimeRange struct {
	Start TimeOfDay
	End   TimeOfDay
}

func NewTimeRange(start, end TimeOfDay) (TimeRange, error) {
	if !start.Before(end) {
		return TimeRange{}, ErrInvalidRange
	}
	return TimeRange{Start: start, End: end}, nil
}

func (r TimeRange) Contains(t TimeOfDay) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}
