package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные заявки"
	msgServiceNotFound    = "услуга не найдена"
	msgStaffNotFound      = "мастер не найден"
	msgStaffNotQualified  = "мастер не оказывает эту услугу"
	msgNoEligibleStaff    = "нет мастеров с подходящей квалификацией"
	msgSlotUnavailable    = "выбранный мастер занят в это время"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service=%q", req.ServiceName)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrStaffNotFound):
			h.logger.Warn("POST /appointments - Staff not found")
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, createAppointment.ErrStaffNotQualified):
			h.logger.Warn("POST /appointments - Staff not qualified: service=%q", req.ServiceName)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgStaffNotQualified)

		case errors.Is(err, createAppointment.ErrNoEligibleStaff):
			h.logger.Warn("POST /appointments - No eligible staff: service=%q", req.ServiceName)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgNoEligibleStaff)

		case errors.Is(err, createAppointment.ErrSlotUnavailable):
			h.logger.Warn("POST /appointments - Slot unavailable: %v", err)
			// Причина недоступности уходит администратору как есть
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable+": "+err.Error())

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: service=%q, error=%v",
				req.ServiceName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	// Подтвержденная запись отвечает 201, сохраненная заявка 202
	status := http.StatusAccepted
	if result.Status == createAppointment.StatusConfirmed {
		status = http.StatusCreated
		h.logger.Info("POST /appointments - Appointment confirmed: id=%d, staff_id=%d",
			result.Appointment.ID, result.Appointment.StaffID)
	} else {
		h.logger.Info("POST /appointments - Pending appointment created: id=%d, status=%s",
			result.Pending.ID, result.Status)
	}

	handlers.RespondJSON(w, status, response)
}
