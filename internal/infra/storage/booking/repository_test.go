package booking

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDown = errors.New("connection refused")

// fakeDB запоминает запрос и возвращает ошибку выполнения
type fakeDB struct {
	query string
	args  []interface{}
}

func (f *fakeDB) QueryContext(_ context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	f.query = query
	f.args = args
	return nil, errDown
}

func (f *fakeDB) QueryRowContext(_ context.Context, _ string, _ ...interface{}) *sql.Row {
	panic("not used")
}

func TestListInRangeQuery(t *testing.T) {
	from := time.Date(2024, time.June, 10, 4, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.June, 15, 3, 59, 59, 0, time.UTC)

	t.Run("active only", func(t *testing.T) {
		query, args, err := listInRangeQuery(from, to, false).ToSql()
		require.NoError(t, err)

		assert.Equal(t,
			"SELECT id, user_id, customer_name, service_name, start_at, end_at, status, notes, created_at, updated_at "+
				"FROM bookings WHERE start_at >= $1 AND start_at <= $2 AND status <> ALL($3) ORDER BY start_at ASC, id ASC",
			query)
		require.Len(t, args, 3)
		assert.Equal(t, from, args[0])
		assert.Equal(t, to, args[1])
	})

	t.Run("including inactive", func(t *testing.T) {
		query, args, err := listInRangeQuery(from, to, true).ToSql()
		require.NoError(t, err)
		assert.NotContains(t, query, "status")
		assert.Len(t, args, 2)
	})
}

func TestRepository_ListInRange(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2024, time.June, 10, 4, 0, 0, 0, time.UTC)

	t.Run("rejects inverted range", func(t *testing.T) {
		db := &fakeDB{}
		_, err := NewRepository(db).ListInRange(ctx, from, from.Add(-time.Hour), false)
		assert.ErrorIs(t, err, ErrInvalidRange)
		assert.Empty(t, db.query)
	})

	t.Run("wraps execution errors", func(t *testing.T) {
		db := &fakeDB{}
		_, err := NewRepository(db).ListInRange(ctx, from, from.Add(24*time.Hour), false)
		assert.ErrorIs(t, err, ErrExecQuery)
		assert.Contains(t, err.Error(), errDown.Error())
		assert.Contains(t, db.query, "FROM bookings")
	})
}
