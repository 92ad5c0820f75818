package get_appointments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

type LifecycleService interface {
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
