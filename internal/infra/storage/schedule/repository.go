package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Repository репозиторий расписаний и блокировок (отгулов) мастеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByStaffID получает недельное расписание мастера.
// Расписание хранится по одной строке на день недели; день без строки или
// с NULL временем означает "не работает в этот день".
// Возвращает ErrScheduleNotFound, если у мастера нет ни одной строки.
func (r *Repository) GetByStaffID(ctx context.Context, staffID int64) (*domain.WorkSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("weekday", "start_time", "end_time").
		From("work_schedules").
		Where(squirrel.Eq{"staff_id": staffID}).
		OrderBy("weekday ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ws := &domain.WorkSchedule{
		StaffID: staffID,
		Days:    make(map[time.Weekday]domain.DayHours),
	}

	found := false
	for rows.Next() {
		var weekday int
		var start, end types.TimeString

		if err := rows.Scan(&weekday, &start, &end); err != nil {
			return nil, fmt.Errorf("%w: GetByStaffID - scan row: %v", ErrScanRow, err)
		}

		found = true
		ws.Days[time.Weekday(weekday)] = domain.DayHours{Start: start, End: end}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByStaffID - rows error: %v", ErrScanRow, err)
	}

	if !found {
		return nil, ErrScheduleNotFound
	}

	return ws, nil
}

// ListBlocks получает блокировки (отгулы) мастера на указанную дату
func (r *Repository) ListBlocks(ctx context.Context, staffID int64, date time.Time) ([]*domain.Block, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "staff_id", "date", "start_time", "end_time", "created_at").
		From("blocks").
		Where(squirrel.Eq{"staff_id": staffID, "date": date}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlocks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlocks - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.Block, 0)
	for rows.Next() {
		var b domain.Block
		var createdAt sql.NullTime

		if err := rows.Scan(
			&b.ID,
			&b.StaffID,
			&b.Date,
			&b.StartTime,
			&b.EndTime,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListBlocks - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		blocks = append(blocks, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBlocks - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}
