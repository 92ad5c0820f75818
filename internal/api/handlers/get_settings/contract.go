package get_settings

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

type SettingsRepository interface {
	Get(ctx context.Context) (*domain.AppSettings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
