package send_reminders

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	sendReminders "github.com/m04kA/SMC-SalonService/internal/usecase/send_reminders"
)

const msgReminderURLNotSet = "адрес вебхука напоминаний не задан в настройках"

// DeliveryResultResponse итог доставки одного напоминания
type DeliveryResultResponse struct {
	AppointmentID int64  `json:"appointmentId"`
	Sent          bool   `json:"sent"`
	Error         string `json:"error,omitempty"`
}

// DispatchResponse HTTP response model
type DispatchResponse struct {
	Total   int                      `json:"total"`
	Sent    int                      `json:"sent"`
	Failed  int                      `json:"failed"`
	Results []DeliveryResultResponse `json:"results"`
}

type Handler struct {
	useCase SendRemindersUseCase
	logger  Logger
}

func NewHandler(useCase SendRemindersUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reminders/dispatch
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, sendReminders.ErrReminderURLNotSet):
			h.logger.Warn("POST /reminders/dispatch - Reminder URL not set")
			handlers.RespondError(w, http.StatusPreconditionFailed, msgReminderURLNotSet)

		default:
			h.logger.Error("POST /reminders/dispatch - Failed to dispatch: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := DispatchResponse{
		Total:   result.Total,
		Sent:    result.Sent,
		Failed:  result.Failed,
		Results: make([]DeliveryResultResponse, 0, len(result.Results)),
	}
	for _, res := range result.Results {
		response.Results = append(response.Results, DeliveryResultResponse{
			AppointmentID: res.AppointmentID,
			Sent:          res.Sent,
			Error:         res.Error,
		})
	}

	h.logger.Info("POST /reminders/dispatch - Dispatched: total=%d sent=%d failed=%d",
		result.Total, result.Sent, result.Failed)
	handlers.RespondJSON(w, http.StatusOK, response)
}
