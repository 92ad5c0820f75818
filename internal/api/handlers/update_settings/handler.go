package update_settings

import (
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

const msgInvalidRequestBody = "некорректное тело запроса"

// UpdateSettingsRequest HTTP request model
type UpdateSettingsRequest struct {
	ManualSelection bool    `json:"manualSelection"`
	ReminderURL     *string `json:"reminderUrl,omitempty"`
}

type Handler struct {
	repo   SettingsRepository
	logger Logger
}

func NewHandler(repo SettingsRepository, logger Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// Handle PUT /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.repo.Update(r.Context(), &domain.AppSettings{
		ManualSelection: req.ManualSelection,
		ReminderURL:     req.ReminderURL,
	}); err != nil {
		h.logger.Error("PUT /settings - Failed to update settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /settings - Settings updated: manual_selection=%t", req.ManualSelection)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
