package pending

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

var pendingColumns = []string{
	"id",
	"service_id",
	"date",
	"start_time",
	"client_name",
	"client_contact",
	"created_at",
}

// Repository репозиторий ожидающих заявок (записи без назначенного мастера)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ожидающих заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает ожидающую заявку
func (r *Repository) Create(ctx context.Context, p *domain.PendingAppointment) (*domain.PendingAppointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("pending_appointments").
		Columns("service_id", "date", "start_time", "client_name", "client_contact").
		Values(p.ServiceID, p.Date, p.StartTime, p.ClientName, p.ClientContact).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time

	return p, nil
}

// GetByID получает ожидающую заявку по ID.
// Внутри транзакции блокирует строку, чтобы подтверждение и отклонение
// одной заявки не прошли одновременно.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.PendingAppointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(pendingColumns...).
		From("pending_appointments").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.PendingAppointment
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.ServiceID,
		&p.Date,
		&p.StartTime,
		&p.ClientName,
		&p.ClientContact,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrPendingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan pending appointment: %v", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time

	return &p, nil
}

// List получает все ожидающие заявки, старые первыми
func (r *Repository) List(ctx context.Context) ([]*domain.PendingAppointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(pendingColumns...).
		From("pending_appointments").
		OrderBy("date ASC, start_time ASC, id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	pendings := make([]*domain.PendingAppointment, 0)
	for rows.Next() {
		var p domain.PendingAppointment
		var createdAt sql.NullTime

		if err := rows.Scan(
			&p.ID,
			&p.ServiceID,
			&p.Date,
			&p.StartTime,
			&p.ClientName,
			&p.ClientContact,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		p.CreatedAt = createdAt.Time
		pendings = append(pendings, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return pendings, nil
}

// Delete удаляет ожидающую заявку (подтверждена или отклонена)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("pending_appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrPendingNotFound
	}

	return nil
}
