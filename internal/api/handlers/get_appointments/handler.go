package get_appointments

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

const (
	msgMissingDate = "отсутствует параметр date"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

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

// ListResponse HTTP response model
type ListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

type Handler struct {
	service LifecycleService
	logger  Logger
}

func NewHandler(service LifecycleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /appointments - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	appts, err := h.service.ListByDate(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list for %s: %v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	response := ListResponse{Appointments: make([]AppointmentResponse, 0, len(appts))}
	for _, appt := range appts {
		response.Appointments = append(response.Appointments, AppointmentResponse{
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
		})
	}

	h.logger.Info("GET /appointments - Listed %d appointments for %s", len(appts), dateStr)
	handlers.RespondJSON(w, http.StatusOK, response)
}
