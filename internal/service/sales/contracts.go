package sales

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// StaffRepository интерфейс репозитория мастеров
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.StaffMember, error)
	UpdateSales(ctx context.Context, id int64, salesValue float64, goalPercentage int) error
}

// LedgerRepository интерфейс репозитория кассовой книги
type LedgerRepository interface {
	CreateEntry(ctx context.Context, entry *domain.LedgerEntry) error
	DeleteEntry(ctx context.Context, id uuid.UUID) error
	AdjustBalance(ctx context.Context, delta float64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
