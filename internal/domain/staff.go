package domain

import (
	"math"
	"time"
)

// StaffMember represents a salon employee who performs services
type StaffMember struct {
	ID        int64
	Name      string
	RoleID    int64
	AvatarURL *string

	// Cumulative sales figures, mutated only by the sales updater
	SalesValue          float64
	SalesTarget         float64
	SalesGoalPercentage int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SalesOperation direction of a sales figure adjustment
type SalesOperation string

const (
	SalesAdd      SalesOperation = "add"
	SalesSubtract SalesOperation = "subtract"
)

// GoalPercentage computes the sales goal percentage for a sales value.
// Zero or negative target yields 0. The result is deliberately not clamped
// to [0, 100]: overshoot and negative values surface bookkeeping drift.
func GoalPercentage(salesValue, salesTarget float64) int {
	if salesTarget <= 0 {
		return 0
	}
	return int(math.Round(salesValue / salesTarget * 100))
}
