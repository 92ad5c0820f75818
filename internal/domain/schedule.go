package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// DayHours working hours for a single weekday.
// Empty start or end means the staff member does not work that day.
type DayHours struct {
	Start types.TimeString
	End   types.TimeString
}

// IsWorking returns true if both bounds are set
func (d DayHours) IsWorking() bool {
	return !d.Start.IsZero() && !d.End.IsZero()
}

// Interval returns the working hours as an interval
func (d DayHours) Interval() Interval {
	return Interval{Start: d.Start, End: d.End}
}

// WorkSchedule weekly working hours of one staff member.
// A weekday absent from Days means "not working that day".
type WorkSchedule struct {
	StaffID int64
	Days    map[time.Weekday]DayHours
}

// HoursFor returns the working hours for the weekday of the given date
func (s *WorkSchedule) HoursFor(date time.Time) (DayHours, bool) {
	hours, ok := s.Days[date.Weekday()]
	return hours, ok
}

// Block is an explicit unavailability window (time off),
// independent of the weekly work schedule
type Block struct {
	ID        int64
	StaffID   int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString

	CreatedAt time.Time
}

// Interval returns the blocked time span
func (b *Block) Interval() Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}
