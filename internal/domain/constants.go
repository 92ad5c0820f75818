package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxClientNameLength  = 200
	MaxContactLength     = 50
	MaxDescriptionLength = 500
)
