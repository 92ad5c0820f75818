package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Appointment represents a confirmed appointment with an assigned staff member
type Appointment struct {
	ID            int64
	StaffID       int64
	ServiceID     int64
	Date          time.Time
	StartTime     types.TimeString
	ClientName    string
	ClientContact string

	// Denormalized service data, frozen at confirmation time so a later
	// service edit does not change what was charged
	ServiceName     string
	ServicePrice    float64
	DurationMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the occupied time span of the appointment
func (a *Appointment) Interval() (Interval, error) {
	return NewInterval(a.StartTime, a.DurationMinutes)
}

// PendingAppointment represents a booking request waiting for manual
// staff assignment. No staff member is attached yet.
type PendingAppointment struct {
	ID            int64
	ServiceID     int64
	Date          time.Time
	StartTime     types.TimeString
	ClientName    string
	ClientContact string

	CreatedAt time.Time
}
