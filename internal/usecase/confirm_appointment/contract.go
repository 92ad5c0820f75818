package confirm_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments"
	"github.com/m04kA/SMC-SalonService/internal/service/availability"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// PendingRepository интерфейс репозитория ожидающих заявок
type PendingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.PendingAppointment, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// StaffRepository интерфейс репозитория мастеров
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.StaffMember, error)
}

// AvailabilityChecker интерфейс проверки доступности слота
type AvailabilityChecker interface {
	Check(ctx context.Context, staffID int64, date time.Time, start types.TimeString, durationMinutes int) (*availability.Result, error)
}

// RotationQueue интерфейс очереди ротации мастеров
type RotationQueue interface {
	Requeue(ctx context.Context, staffID int64) error
}

// LifecycleManager интерфейс менеджера жизненного цикла записей
type LifecycleManager interface {
	Confirm(ctx context.Context, params appointments.ConfirmParams) (*domain.Appointment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
