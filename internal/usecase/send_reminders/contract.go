package send_reminders

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/integrations/reminderwebhook"
)

// AppointmentRepository интерфейс репозитория подтвержденных записей
type AppointmentRepository interface {
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

// SettingsRepository интерфейс репозитория настроек приложения
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.AppSettings, error)
}

// WebhookClient интерфейс клиента доставки напоминаний
type WebhookClient interface {
	Send(ctx context.Context, url string, payload reminderwebhook.Payload) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
