package domain

import "time"

// AppSettings singleton application settings.
// ManualSelection forces every new booking into the pending state
// for human staff assignment.
type AppSettings struct {
	ManualSelection bool
	ReminderURL     *string // outbound reminder webhook, nil = disabled

	UpdatedAt time.Time
}
