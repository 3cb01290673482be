package schedule

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

type fakeResult int64

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return int64(r), nil }

// fakeDB запоминает последний запрос
type fakeDB struct {
	query    string
	args     []interface{}
	affected int64
	err      error
}

func (f *fakeDB) QueryContext(_ context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	f.query, f.args = query, args
	return nil, errors.New("query not supported in fake")
}

func (f *fakeDB) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	f.query, f.args = query, args
	if f.err != nil {
		return nil, f.err
	}
	return fakeResult(f.affected), nil
}

var day = civiltime.Date{Year: 2024, Month: time.December, Day: 24}

func TestParseWindows(t *testing.T) {
	windows, err := ParseWindows([]string{"09:00-12:00", "13:30-17:00"})
	require.NoError(t, err)
	require.Len(t, windows, 2)
	assert.Equal(t, types.MustTimeString("13:30"), windows[1].Start)
	assert.Equal(t, []string{"09:00-12:00", "13:30-17:00"}, FormatWindows(windows))

	for _, bad := range []string{"09:00", "09:00-", "9-10", "09:00-25:00"} {
		_, err := ParseWindows([]string{bad})
		assert.ErrorIs(t, err, ErrInvalidWindow, bad)
	}
}

func TestUpsertOverrideQuery(t *testing.T) {
	o := domain.DayOverride{
		Date:    day,
		Windows: []domain.TimeRange{{Start: types.MustTimeString("09:00"), End: types.MustTimeString("13:00")}},
		Reason:  "Christmas Eve",
	}

	query, args, err := upsertOverrideQuery(o).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO day_overrides (day,closed,windows,reason) VALUES ($1,$2,$3,$4)")
	assert.Contains(t, query, "ON CONFLICT (day) DO UPDATE SET")
	require.Len(t, args, 4)
	assert.Equal(t, "2024-12-24", args[0])
	assert.Equal(t, false, args[1])
	assert.Equal(t, "Christmas Eve", args[3])
}

func TestRepository_UpsertOverride(t *testing.T) {
	db := &fakeDB{affected: 1}
	require.NoError(t, NewRepository(db).UpsertOverride(context.Background(), domain.DayOverride{Date: day, Closed: true}))
	assert.Contains(t, db.query, "INSERT INTO day_overrides")

	db = &fakeDB{err: errors.New("deadlock")}
	err := NewRepository(db).UpsertOverride(context.Background(), domain.DayOverride{Date: day})
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_DeleteOverride(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		db := &fakeDB{affected: 1}
		require.NoError(t, NewRepository(db).DeleteOverride(context.Background(), day))
		assert.Equal(t, "DELETE FROM day_overrides WHERE day = $1", db.query)
		assert.Equal(t, []interface{}{"2024-12-24"}, db.args)
	})

	t.Run("not found", func(t *testing.T) {
		db := &fakeDB{affected: 0}
		err := NewRepository(db).DeleteOverride(context.Background(), day)
		assert.ErrorIs(t, err, ErrOverrideNotFound)
	})
}

func TestRepository_ListBlocks_QueryShape(t *testing.T) {
	db := &fakeDB{}
	from := time.Date(2024, time.December, 24, 5, 0, 0, 0, time.UTC)

	_, err := NewRepository(db).ListBlocks(context.Background(), from, from.Add(24*time.Hour))

	assert.ErrorIs(t, err, ErrExecQuery)
	assert.Equal(t, "SELECT id, kind, title, start_at, end_at FROM schedule_blocks WHERE start_at < $1 AND end_at > $2 ORDER BY start_at ASC, id ASC", db.query)
}
