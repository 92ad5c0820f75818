package domain

import "github.com/m04kA/SMC-SalonService/pkg/types"

// Interval represents a half-open time interval [Start, End) within one day
type Interval struct {
	Start types.TimeString
	End   types.TimeString
}

// NewInterval builds an interval from a start time and a duration in minutes
func NewInterval(start types.TimeString, durationMinutes int) (Interval, error) {
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: end}, nil
}

// Overlaps returns true if the two intervals intersect.
// Both comparisons are strict, so back-to-back intervals
// (one ends exactly when the other starts) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.IsBefore(other.End) && other.Start.IsBefore(i.End)
}

// Contains returns true if other lies fully within i
func (i Interval) Contains(other Interval) bool {
	return !other.Start.IsBefore(i.Start) && !i.End.IsBefore(other.End)
}
