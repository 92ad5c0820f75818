package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// AppointmentRepository интерфейс репозитория подтвержденных записей
type AppointmentRepository interface {
	ListByStaffAndDate(ctx context.Context, staffID int64, date time.Time) ([]*domain.Appointment, error)
}

// ScheduleRepository интерфейс репозитория расписаний и блокировок
type ScheduleRepository interface {
	GetByStaffID(ctx context.Context, staffID int64) (*domain.WorkSchedule, error)
	ListBlocks(ctx context.Context, staffID int64, date time.Time) ([]*domain.Block, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
