package domain

import "time"

// Client represents a salon client, looked up by contact handle.
// At most one client record exists per contact handle.
type Client struct {
	ID      int64
	Name    string
	Contact string // messaging number or similar handle

	CreatedAt time.Time
	UpdatedAt time.Time
}
