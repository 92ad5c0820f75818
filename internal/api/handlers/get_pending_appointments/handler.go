package get_pending_appointments

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

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

// ListResponse HTTP response model
type ListResponse struct {
	Pending []PendingResponse `json:"pending"`
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

// Handle GET /api/v1/pending-appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	pendings, err := h.service.ListPending(r.Context())
	if err != nil {
		h.logger.Error("GET /pending-appointments - Failed to list: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := ListResponse{Pending: make([]PendingResponse, 0, len(pendings))}
	for _, p := range pendings {
		response.Pending = append(response.Pending, PendingResponse{
			ID:            p.ID,
			ServiceID:     p.ServiceID,
			Date:          p.Date.Format(domain.DateFormat),
			StartTime:     p.StartTime.String(),
			ClientName:    p.ClientName,
			ClientContact: p.ClientContact,
			CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		})
	}

	h.logger.Info("GET /pending-appointments - Listed %d pending appointments", len(pendings))
	handlers.RespondJSON(w, http.StatusOK, response)
}
