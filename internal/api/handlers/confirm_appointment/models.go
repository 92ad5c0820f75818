package confirm_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ConfirmAppointmentRequest HTTP request model
type ConfirmAppointmentRequest struct {
	StaffID int64 `json:"staffId"`
}

// AppointmentResponse HTTP модель подтвержденной записи
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	StaffID         int64   `json:"staffId"`
	ServiceID       int64   `json:"serviceId"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	ClientName      string  `json:"clientName"`
	ClientContact   string  `json:"clientContact"`
	CreatedAt       string  `json:"createdAt"`
}

// FromAppointment конвертирует доменную модель в HTTP response
func FromAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              appt.ID,
		StaffID:         appt.StaffID,
		ServiceID:       appt.ServiceID,
		Date:            appt.Date.Format(domain.DateFormat),
		StartTime:       appt.StartTime.String(),
		DurationMinutes: appt.DurationMinutes,
		ServiceName:     appt.ServiceName,
		ServicePrice:    appt.ServicePrice,
		ClientName:      appt.ClientName,
		ClientContact:   appt.ClientContact,
		CreatedAt:       appt.CreatedAt.Format(time.RFC3339),
	}
}
