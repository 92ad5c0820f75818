package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments"
	"github.com/m04kA/SMC-SalonService/internal/service/availability"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByName(ctx context.Context, name string) (*domain.Service, error)
}

// StaffRepository интерфейс репозитория мастеров
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.StaffMember, error)
	ListByRole(ctx context.Context, roleID int64) ([]*domain.StaffMember, error)
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	GetByContact(ctx context.Context, contact string) (*domain.Client, error)
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	UpdateName(ctx context.Context, id int64, name string) error
}

// PendingRepository интерфейс репозитория ожидающих заявок
type PendingRepository interface {
	Create(ctx context.Context, p *domain.PendingAppointment) (*domain.PendingAppointment, error)
}

// SettingsRepository интерфейс репозитория настроек приложения
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.AppSettings, error)
}

// AvailabilityChecker интерфейс проверки доступности слота
type AvailabilityChecker interface {
	Check(ctx context.Context, staffID int64, date time.Time, start types.TimeString, durationMinutes int) (*availability.Result, error)
}

// RotationQueue интерфейс очереди ротации мастеров
type RotationQueue interface {
	CandidateOrder(ctx context.Context, eligible []int64) ([]int64, error)
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
