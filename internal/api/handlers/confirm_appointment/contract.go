package confirm_appointment

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	confirmAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/confirm_appointment"
)

type ConfirmAppointmentUseCase interface {
	Execute(ctx context.Context, req *confirmAppointment.Request) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
