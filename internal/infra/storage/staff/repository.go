package staff

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

var staffColumns = []string{
	"id",
	"name",
	"role_id",
	"avatar_url",
	"sales_value",
	"sales_target",
	"sales_goal_percentage",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с мастерами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория мастеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает мастера по ID.
// Внутри транзакции блокирует строку (FOR UPDATE), чтобы конкурентные
// обновления продаж не теряли изменения друг друга.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(staffColumns...).
		From("staff_members").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var member domain.StaffMember
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&member.ID,
		&member.Name,
		&member.RoleID,
		&member.AvatarURL,
		&member.SalesValue,
		&member.SalesTarget,
		&member.SalesGoalPercentage,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan staff member: %v", ErrScanRow, err)
	}

	member.CreatedAt = createdAt.Time
	member.UpdatedAt = updatedAt.Time

	return &member, nil
}

// ListByRole получает мастеров с указанной ролью, отсортированных по ID.
// Порядок стабилен и используется как порядок "новичков" при построении
// очереди ротации.
func (r *Repository) ListByRole(ctx context.Context, roleID int64) ([]*domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(staffColumns...).
		From("staff_members").
		Where(squirrel.Eq{"role_id": roleID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRole - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRole - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	members := make([]*domain.StaffMember, 0)
	for rows.Next() {
		var member domain.StaffMember
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(
			&member.ID,
			&member.Name,
			&member.RoleID,
			&member.AvatarURL,
			&member.SalesValue,
			&member.SalesTarget,
			&member.SalesGoalPercentage,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByRole - scan row: %v", ErrScanRow, err)
		}

		member.CreatedAt = createdAt.Time
		member.UpdatedAt = updatedAt.Time
		members = append(members, &member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByRole - rows error: %v", ErrScanRow, err)
	}

	return members, nil
}

// UpdateSales обновляет накопленные продажи и процент выполнения плана
func (r *Repository) UpdateSales(ctx context.Context, id int64, salesValue float64, goalPercentage int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("staff_members").
		Set("sales_value", salesValue).
		Set("sales_goal_percentage", goalPercentage).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateSales - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateSales - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSales - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrStaffNotFound
	}

	return nil
}
