package confirm_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	confirmAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/confirm_appointment"
)

const (
	msgInvalidPendingID   = "некорректный ID заявки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные запроса"
	msgPendingNotFound    = "ожидающая заявка не найдена"
	msgStaffNotFound      = "мастер не найден"
	msgStaffNotQualified  = "мастер не оказывает эту услугу"
	msgSlotUnavailable    = "выбранный мастер занят в это время"
)

type Handler struct {
	useCase ConfirmAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/pending-appointments/{pendingId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	pendingID, err := strconv.ParseInt(vars["pendingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /pending-appointments/{id}/confirm - Invalid pending ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPendingID)
		return
	}

	var req ConfirmAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pending-appointments/{id}/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmAppointment.Request{
		PendingID: pendingID,
		StaffID:   req.StaffID,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmAppointment.ErrInvalidInput):
			h.logger.Warn("POST /pending-appointments/{id}/confirm - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, confirmAppointment.ErrPendingNotFound):
			h.logger.Warn("POST /pending-appointments/{id}/confirm - Pending not found: pending_id=%d", pendingID)
			handlers.RespondNotFound(w, msgPendingNotFound)

		case errors.Is(err, confirmAppointment.ErrStaffNotFound):
			h.logger.Warn("POST /pending-appointments/{id}/confirm - Staff not found: staff_id=%d", req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, confirmAppointment.ErrStaffNotQualified):
			h.logger.Warn("POST /pending-appointments/{id}/confirm - Staff not qualified: staff_id=%d", req.StaffID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgStaffNotQualified)

		case errors.Is(err, confirmAppointment.ErrSlotUnavailable):
			h.logger.Warn("POST /pending-appointments/{id}/confirm - Slot unavailable: %v", err)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable+": "+err.Error())

		default:
			h.logger.Error("POST /pending-appointments/{id}/confirm - Failed to confirm: pending_id=%d, error=%v",
				pendingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /pending-appointments/{id}/confirm - Confirmed: pending_id=%d, appointment_id=%d, staff_id=%d",
		pendingID, result.ID, result.StaffID)
	handlers.RespondJSON(w, http.StatusCreated, FromAppointment(result))
}
