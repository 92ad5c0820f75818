package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Статусы исхода разрешения заявки
const (
	StatusConfirmed       = "confirmed"        // мастер назначен, запись подтверждена
	StatusPending         = "pending"          // включен ручной режим, заявка ждет подтверждения
	StatusPendingFallback = "pending_fallback" // свободных мастеров нет, заявка сохранена
)

// Request модель запроса на создание записи
type Request struct {
	ServiceName   string           // Название услуги
	Date          time.Time        // Дата записи (без времени)
	StartTime     types.TimeString // Время начала (например, "14:00")
	ClientName    string           // Имя клиента
	ClientContact string           // Контакт клиента (телефон или мессенджер)
	StaffID       *int64           // ID мастера при ручном выборе (опционально)
}

// Response модель исхода разрешения заявки.
// Ровно одно из полей Appointment/Pending заполнено в зависимости от статуса.
type Response struct {
	Status      string                     // confirmed | pending | pending_fallback
	Message     string                     // пояснение для pending_fallback
	Appointment *domain.Appointment        // заполнен при StatusConfirmed
	Pending     *domain.PendingAppointment // заполнен при StatusPending и StatusPendingFallback
}
