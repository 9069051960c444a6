package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// Код ошибки PostgreSQL для нарушения уникального индекса
const uniqueViolationCode = "23505"

var overrideColumns = []string{
	"id",
	"override_date",
	"start_time",
	"capacity",
	"active",
	"created_at",
	"updated_at",
}

var blockColumns = []string{
	"id",
	"block_date",
	"start_time",
	"reason",
	"created_at",
}

// Repository репозиторий для управления расписанием:
// переопределения вместимости и блокировки слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateOverride создает переопределение вместимости на слот.
// Частичный уникальный индекс на (override_date, start_time) WHERE active
// не допускает двух активных переопределений на один слот
func (r *Repository) CreateOverride(ctx context.Context, override *domain.CapacityOverride) (*domain.CapacityOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("capacity_overrides").
		Columns("override_date", "start_time", "capacity", "active").
		Values(override.Date, override.StartTime, override.Capacity, true).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateOverride - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&override.ID,
		&override.CreatedAt,
		&override.UpdatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolationCode {
			return nil, ErrOverrideExists
		}
		return nil, fmt.Errorf("%w: CreateOverride - execute insert: %v", ErrExecQuery, err)
	}

	override.Active = true

	return override, nil
}

// GetOverrideByID получает переопределение по ID
func (r *Repository) GetOverrideByID(ctx context.Context, id int64) (*domain.CapacityOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(overrideColumns...).
		From("capacity_overrides").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOverrideByID - build select query: %v", ErrBuildQuery, err)
	}

	var override domain.CapacityOverride
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&override.ID,
		&override.Date,
		&override.StartTime,
		&override.Capacity,
		&override.Active,
		&override.CreatedAt,
		&override.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrOverrideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverrideByID - scan override: %v", ErrScanRow, err)
	}

	return &override, nil
}

// DeactivateOverride деактивирует переопределение вместимости.
// Запись не удаляется - история изменений расписания сохраняется
func (r *Repository) DeactivateOverride(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("capacity_overrides").
		Set("active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "active": true}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeactivateOverride - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeactivateOverride - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeactivateOverride - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOverrideNotFound
	}

	return nil
}

// ListOverridesByRange получает активные переопределения за период (включительно)
func (r *Repository) ListOverridesByRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.CapacityOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(overrideColumns...).
		From("capacity_overrides").
		Where(squirrel.GtOrEq{"override_date": startDate}).
		Where(squirrel.LtOrEq{"override_date": endDate}).
		Where(squirrel.Eq{"active": true}).
		OrderBy("override_date ASC, start_time ASC, created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListOverridesByRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverridesByRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	overrides := make([]*domain.CapacityOverride, 0)
	for rows.Next() {
		var override domain.CapacityOverride
		err := rows.Scan(
			&override.ID,
			&override.Date,
			&override.StartTime,
			&override.Capacity,
			&override.Active,
			&override.CreatedAt,
			&override.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListOverridesByRange - scan row: %v", ErrScanRow, err)
		}
		overrides = append(overrides, &override)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListOverridesByRange - rows error: %v", ErrScanRow, err)
	}

	return overrides, nil
}

// CreateBlock создает блокировку слота.
// StartTime = nil блокирует весь день
func (r *Repository) CreateBlock(ctx context.Context, block *domain.BlockedSlot) (*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_slots").
		Columns("block_date", "start_time", "reason").
		Values(block.Date, block.StartTime, block.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateBlock - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&block.ID,
		&block.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: CreateBlock - execute insert: %v", ErrExecQuery, err)
	}

	return block, nil
}

// GetBlockByID получает блокировку по ID
func (r *Repository) GetBlockByID(ctx context.Context, id int64) (*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("blocked_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockByID - build select query: %v", ErrBuildQuery, err)
	}

	var block domain.BlockedSlot
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&block.ID,
		&block.Date,
		&block.StartTime,
		&block.Reason,
		&block.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBlockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockByID - scan block: %v", ErrScanRow, err)
	}

	return &block, nil
}

// DeleteBlock удаляет блокировку слота
func (r *Repository) DeleteBlock(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteBlock - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteBlock - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteBlock - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockNotFound
	}

	return nil
}

// ListBlocksByRange получает блокировки за период (включительно)
func (r *Repository) ListBlocksByRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("blocked_slots").
		Where(squirrel.GtOrEq{"block_date": startDate}).
		Where(squirrel.LtOrEq{"block_date": endDate}).
		OrderBy("block_date ASC, start_time ASC NULLS FIRST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBlocksByRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlocksByRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.BlockedSlot, 0)
	for rows.Next() {
		var block domain.BlockedSlot
		err := rows.Scan(
			&block.ID,
			&block.Date,
			&block.StartTime,
			&block.Reason,
			&block.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBlocksByRange - scan row: %v", ErrScanRow, err)
		}
		blocks = append(blocks, &block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBlocksByRange - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

// FindBlock ищет блокировку, накрывающую конкретный слот:
// точное совпадение по времени или блокировка всего дня
func (r *Repository) FindBlock(ctx context.Context, date time.Time, slot types.TimeString) (*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("blocked_slots").
		Where(squirrel.Eq{"block_date": date}).
		Where(squirrel.Or{
			squirrel.Eq{"start_time": slot},
			squirrel.Eq{"start_time": nil},
		}).
		OrderBy("start_time ASC NULLS FIRST").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindBlock - build select query: %v", ErrBuildQuery, err)
	}

	var block domain.BlockedSlot
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&block.ID,
		&block.Date,
		&block.StartTime,
		&block.Reason,
		&block.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBlockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindBlock - scan block: %v", ErrScanRow, err)
	}

	return &block, nil
}
