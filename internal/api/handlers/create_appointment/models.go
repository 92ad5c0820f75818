package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	createAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ServiceName   string `json:"serviceName"`
	Date          string `json:"date"`      // "2025-10-14"
	StartTime     string `json:"startTime"` // "14:00"
	ClientName    string `json:"clientName"`
	ClientContact string `json:"clientContact"`
	StaffID       *int64 `json:"staffId,omitempty"`
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

// PendingResponse HTTP модель ожидающей заявки
type PendingResponse struct {
	ID            int64  `json:"id"`
	ServiceID     int64  `json:"serviceId"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	ClientName    string `json:"clientName"`
	ClientContact string `json:"clientContact"`
	CreatedAt     string `json:"createdAt"`
}

// CreateAppointmentResponse HTTP response model.
// Заполнено либо appointment, либо pending в зависимости от статуса.
type CreateAppointmentResponse struct {
	Status      string               `json:"status"`
	Message     string               `json:"message,omitempty"`
	Appointment *AppointmentResponse `json:"appointment,omitempty"`
	Pending     *PendingResponse     `json:"pending,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ServiceName:   r.ServiceName,
		Date:          date,
		StartTime:     startTime,
		ClientName:    r.ClientName,
		ClientContact: r.ClientContact,
		StaffID:       r.StaffID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *CreateAppointmentResponse {
	result := &CreateAppointmentResponse{
		Status:  resp.Status,
		Message: resp.Message,
	}

	if resp.Appointment != nil {
		result.Appointment = appointmentResponse(resp.Appointment)
	}
	if resp.Pending != nil {
		result.Pending = pendingResponse(resp.Pending)
	}

	return result
}

func appointmentResponse(appt *domain.Appointment) *AppointmentResponse {
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

func pendingResponse(p *domain.PendingAppointment) *PendingResponse {
	return &PendingResponse{
		ID:            p.ID,
		ServiceID:     p.ServiceID,
		Date:          p.Date.Format(domain.DateFormat),
		StartTime:     p.StartTime.String(),
		ClientName:    p.ClientName,
		ClientContact: p.ClientContact,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}
