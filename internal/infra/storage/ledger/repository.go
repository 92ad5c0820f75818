package ledger

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки Postgres для нарушения UNIQUE ограничения
const uniqueViolation = "23505"

// Repository репозиторий кассовой книги и баланса кассы.
// Баланс хранится одной строкой (id=1) и корректируется атомарным
// balance = balance + delta при каждой записи/удалении.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория кассовой книги
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateEntry добавляет запись в кассовую книгу
func (r *Repository) CreateEntry(ctx context.Context, entry *domain.LedgerEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("ledger_entries").
		Columns("id", "date", "description", "direction", "amount", "appointment_id").
		Values(entry.ID, entry.Date, entry.Description, entry.Direction, entry.Amount, entry.AppointmentID).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateEntry - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return ErrDuplicateEntry
		}
		return fmt.Errorf("%w: CreateEntry - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteEntry удаляет запись кассовой книги по ID
func (r *Repository) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("ledger_entries").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteEntry - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteEntry - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteEntry - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// AdjustBalance корректирует баланс кассы на delta (может быть отрицательной).
// Одно UPDATE выражение, чтобы конкурентные корректировки не теряли друг друга.
func (r *Repository) AdjustBalance(ctx context.Context, delta float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("cash_balance").
		Set("balance", squirrel.Expr("balance + ?", delta)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: AdjustBalance - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: AdjustBalance - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: AdjustBalance - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: AdjustBalance - cash balance row missing", ErrExecQuery)
	}

	return nil
}

// GetBalance возвращает текущий баланс кассы
func (r *Repository) GetBalance(ctx context.Context) (float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("balance").
		From("cash_balance").
		Where(squirrel.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: GetBalance - build select query: %v", ErrBuildQuery, err)
	}

	var balance float64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&balance)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("%w: GetBalance - cash balance row missing", ErrExecQuery)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: GetBalance - scan balance: %v", ErrScanRow, err)
	}

	return balance, nil
}
