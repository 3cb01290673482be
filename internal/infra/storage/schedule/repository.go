package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

const (
	overridesTable = "day_overrides"
	blocksTable    = "schedule_blocks"
)

// Repository хранит исключения из недельного расписания (праздники, сокращённые дни)
// и разовые блокировки (обслуживание оборудования и т.п.)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetOverrides получает исключения для дат в диапазоне [from, to]
func (r *Repository) GetOverrides(ctx context.Context, from, to civiltime.Date) ([]domain.DayOverride, error) {
	query, args, err := psqlbuilder.Select("day", "closed", "windows", "reason").
		From(overridesTable).
		Where(squirrel.GtOrEq{"day": from.Key()}).
		Where(squirrel.LtOrEq{"day": to.Key()}).
		OrderBy("day ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverrides - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverrides - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	overrides := make([]domain.DayOverride, 0)
	for rows.Next() {
		var (
			day     time.Time
			o       domain.DayOverride
			windows []string
			reason  sql.NullString
		)
		if err := rows.Scan(&day, &o.Closed, pq.Array(&windows), &reason); err != nil {
			return nil, fmt.Errorf("%w: GetOverrides - scan override: %v", ErrScanRow, err)
		}

		// DATE приходит как полночь UTC, берём календарные поля как есть
		o.Date = civiltime.Date{Year: day.Year(), Month: day.Month(), Day: day.Day()}
		o.Reason = reason.String
		o.Windows, err = ParseWindows(windows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetOverrides - day %s: %v", ErrScanRow, o.Date.Key(), err)
		}
		overrides = append(overrides, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOverrides - rows error: %v", ErrScanRow, err)
	}

	return overrides, nil
}

// UpsertOverride создает или заменяет исключение для даты
func (r *Repository) UpsertOverride(ctx context.Context, o domain.DayOverride) error {
	query, args, err := upsertOverrideQuery(o).ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpsertOverride - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertOverride - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteOverride удаляет исключение, день возвращается к недельному расписанию
func (r *Repository) DeleteOverride(ctx context.Context, day civiltime.Date) error {
	query, args, err := psqlbuilder.Delete(overridesTable).
		Where(squirrel.Eq{"day": day.Key()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteOverride - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteOverride - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteOverride - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOverrideNotFound
	}

	return nil
}

// ListBlocks получает разовые блокировки, пересекающиеся с интервалом [from, to)
func (r *Repository) ListBlocks(ctx context.Context, from, to time.Time) ([]domain.ScheduleBlock, error) {
	query, args, err := psqlbuilder.Select("id", "kind", "title", "start_at", "end_at").
		From(blocksTable).
		Where(squirrel.Lt{"start_at": to.UTC()}).
		Where(squirrel.Gt{"end_at": from.UTC()}).
		OrderBy("start_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlocks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlocks - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]domain.ScheduleBlock, 0)
	for rows.Next() {
		var (
			b     domain.ScheduleBlock
			title sql.NullString
		)
		if err := rows.Scan(&b.ID, &b.Kind, &title, &b.Start, &b.End); err != nil {
			return nil, fmt.Errorf("%w: ListBlocks - scan block: %v", ErrScanRow, err)
		}
		b.Title = title.String
		b.Start = b.Start.UTC()
		b.End = b.End.UTC()
		blocks = append(blocks, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBlocks - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

func upsertOverrideQuery(o domain.DayOverride) squirrel.InsertBuilder {
	return psqlbuilder.Insert(overridesTable).
		Columns("day", "closed", "windows", "reason").
		Values(o.Date.Key(), o.Closed, pq.Array(FormatWindows(o.Windows)), o.Reason).
		Suffix("ON CONFLICT (day) DO UPDATE SET " +
			"closed = EXCLUDED.closed, windows = EXCLUDED.windows, reason = EXCLUDED.reason, updated_at = NOW()")
}

// ParseWindows разбирает окна вида "09:00-12:00"
func ParseWindows(raw []string) ([]domain.TimeRange, error) {
	out := make([]domain.TimeRange, 0, len(raw))
	for _, s := range raw {
		r, err := domain.ParseTimeRange(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
		}
		out = append(out, r)
	}
	return out, nil
}

// FormatWindows обратная операция к ParseWindows
func FormatWindows(windows []domain.TimeRange) []string {
	out := make([]string, len(windows))
	for i, w := range windows {
		out[i] = w.String()
	}
	return out
}
