package get_pending_appointments

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

type LifecycleService interface {
	ListPending(ctx context.Context) ([]*domain.PendingAppointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
