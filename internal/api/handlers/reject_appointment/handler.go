package reject_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments"
)

const (
	msgInvalidPendingID = "некорректный ID заявки"
	msgPendingNotFound  = "ожидающая заявка не найдена"
)

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

// Handle DELETE /api/v1/pending-appointments/{pendingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	pendingID, err := strconv.ParseInt(vars["pendingId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /pending-appointments/{id} - Invalid pending ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPendingID)
		return
	}

	if err := h.service.RejectPending(r.Context(), pendingID); err != nil {
		switch {
		case errors.Is(err, appointments.ErrPendingNotFound):
			h.logger.Warn("DELETE /pending-appointments/{id} - Pending not found: pending_id=%d", pendingID)
			handlers.RespondNotFound(w, msgPendingNotFound)

		default:
			h.logger.Error("DELETE /pending-appointments/{id} - Failed to reject: pending_id=%d, error=%v",
				pendingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /pending-appointments/{id} - Rejected: pending_id=%d", pendingID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
