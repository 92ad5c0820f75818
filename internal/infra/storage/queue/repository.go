package queue

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// Repository репозиторий очереди ротации мастеров.
// Очередь хранится в таблице staff_queue: position - монотонно растущий
// bigserial, staff_id уникален. Порядок очереди = порядок position.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория очереди
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает ID мастеров в порядке очереди (давно назначавшиеся первыми).
// Внутри транзакции блокирует строки очереди, чтобы два конкурентных
// автоназначения не выбрали одного и того же "самого давнего" мастера.
func (r *Repository) List(ctx context.Context) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("staff_id").
		From("staff_queue").
		OrderBy("position ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	staffIDs := make([]int64, 0)
	for rows.Next() {
		var staffID int64
		if err := rows.Scan(&staffID); err != nil {
			return nil, fmt.Errorf("%w: List - scan staff_id: %v", ErrScanRow, err)
		}
		staffIDs = append(staffIDs, staffID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return staffIDs, nil
}

// Requeue перемещает мастера в конец очереди: удаляет текущую позицию
// (если есть) и вставляет новую с максимальным position
func (r *Repository) Requeue(ctx context.Context, staffID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("staff_queue").
		Where(squirrel.Eq{"staff_id": staffID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Requeue - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: Requeue - execute delete: %v", ErrExecQuery, err)
	}

	insertQuery, insertArgs, err := psqlbuilder.Insert("staff_queue").
		Columns("staff_id").
		Values(staffID).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Requeue - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: Requeue - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
