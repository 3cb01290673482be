package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"user_id",
	"customer_name",
	"service_name",
	"start_at",
	"end_at",
	"status",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований (только чтение).
// Бронирования создаются и изменяются сервисом бронирования, здесь они
// нужны только для расчёта загрузки дня и таймлайна.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// ListInRange получает бронирования, начинающиеся в интервале [from, to].
// Если includeInactive == false, отменённые и no-show исключаются.
// Результат отсортирован по времени начала.
func (r *Repository) ListInRange(ctx context.Context, from, to time.Time, includeInactive bool) ([]domain.Booking, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: ListInRange - from=%s to=%s", ErrInvalidRange, from, to)
	}

	query, args, err := listInRangeQuery(from, to, includeInactive).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListInRange - scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, *b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListInRange - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func listInRangeQuery(from, to time.Time, includeInactive bool) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.GtOrEq{"start_at": from.UTC()}).
		Where(squirrel.LtOrEq{"start_at": to.UTC()}).
		OrderBy("start_at ASC", "id ASC")

	if !includeInactive {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		builder = builder.Where(squirrel.Expr("status <> ALL(?)", pq.Array(inactive)))
	}

	return builder
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b                    domain.Booking
		customerName         sql.NullString
		startAt, endAt       sql.NullTime
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&b.ID,
		&b.UserID,
		&customerName,
		&b.ServiceName,
		&startAt,
		&endAt,
		&b.Status,
		&b.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	// NULL в start_at/end_at остаётся нулевым временем, движок такие записи пропускает
	b.CustomerName = customerName.String
	if startAt.Valid {
		b.Start = startAt.Time.UTC()
	}
	if endAt.Valid {
		b.End = endAt.Time.UTC()
	}
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}
