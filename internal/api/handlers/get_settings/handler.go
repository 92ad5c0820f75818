package get_settings

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
)

// SettingsResponse HTTP модель настроек приложения
type SettingsResponse struct {
	ManualSelection bool    `json:"manualSelection"`
	ReminderURL     *string `json:"reminderUrl,omitempty"`
	UpdatedAt       string  `json:"updatedAt"`
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

// Handle GET /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	settings, err := h.repo.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /settings - Failed to get settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SettingsResponse{
		ManualSelection: settings.ManualSelection,
		ReminderURL:     settings.ReminderURL,
		UpdatedAt:       settings.UpdatedAt.Format(time.RFC3339),
	})
}
