package domain

import "time"

// Role qualifies which staff members may perform which services
type Role struct {
	ID   int64
	Name string
}

// Service represents a salon service offered to clients
type Service struct {
	ID              int64
	Name            string
	Price           float64
	DurationMinutes int
	RoleID          int64

	CreatedAt time.Time
	UpdatedAt time.Time
}
