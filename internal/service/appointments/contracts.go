package appointments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// AppointmentRepository интерфейс репозитория подтвержденных записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

// PendingRepository интерфейс репозитория ожидающих заявок
type PendingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.PendingAppointment, error)
	List(ctx context.Context) ([]*domain.PendingAppointment, error)
	Delete(ctx context.Context, id int64) error
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// SalesUpdater интерфейс обновления продаж и кассовой книги
type SalesUpdater interface {
	Apply(ctx context.Context, staffID int64, price float64, op domain.SalesOperation) (*domain.StaffMember, error)
	Credit(ctx context.Context, appointmentID int64, date time.Time, description string, amount float64) error
	Reverse(ctx context.Context, appointmentID int64, amount float64) error
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
