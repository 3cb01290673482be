package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
)

type fakeOverrideRepo struct {
	stored  map[civiltime.Date]domain.DayOverride
	failErr error
}

func newFakeOverrideRepo() *fakeOverrideRepo {
	return &fakeOverrideRepo{stored: make(map[civiltime.Date]domain.DayOverride)}
}

func (f *fakeOverrideRepo) GetOverrides(_ context.Context, from, to civiltime.Date) ([]domain.DayOverride, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	var out []domain.DayOverride
	for d := from; !d.After(to); d = d.AddDays(1) {
		if o, ok := f.stored[d]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOverrideRepo) UpsertOverride(_ context.Context, o domain.DayOverride) error {
	if f.failErr != nil {
		return f.failErr
	}
	f.stored[o.Date] = o
	return nil
}

func (f *fakeOverrideRepo) DeleteOverride(_ context.Context, day civiltime.Date) error {
	if _, ok := f.stored[day]; !ok {
		return scheduleRepo.ErrOverrideNotFound
	}
	delete(f.stored, day)
	return nil
}

var christmas = civiltime.Date{Year: 2024, Month: time.December, Day: 25}

func TestService_SetOverride(t *testing.T) {
	t.Run("stores sorted windows", func(t *testing.T) {
		repo := newFakeOverrideRepo()
		svc := NewService(repo, 0, logger.NewNop())

		resp, err := svc.SetOverride(context.Background(), &models.SetOverrideRequest{
			UserID:  1,
			Date:    christmas,
			Windows: []string{"14:00-16:00", "10:00-12:00"},
			Reason:  "short day",
		})
		require.NoError(t, err)
		assert.Equal(t, "2024-12-25", resp.Date)
		assert.Equal(t, []string{"10:00-12:00", "14:00-16:00"}, resp.Windows)
		assert.Len(t, repo.stored[christmas].Windows, 2)
	})

	t.Run("closed day ignores windows", func(t *testing.T) {
		repo := newFakeOverrideRepo()
		svc := NewService(repo, 0, logger.NewNop())

		resp, err := svc.SetOverride(context.Background(), &models.SetOverrideRequest{
			Date:    christmas,
			Closed:  true,
			Windows: []string{"garbage"},
		})
		require.NoError(t, err)
		assert.True(t, resp.Closed)
		assert.Empty(t, resp.Windows)
	})

	t.Run("rejects open day without windows", func(t *testing.T) {
		svc := NewService(newFakeOverrideRepo(), 0, logger.NewNop())
		_, err := svc.SetOverride(context.Background(), &models.SetOverrideRequest{Date: christmas})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects overlapping windows", func(t *testing.T) {
		svc := NewService(newFakeOverrideRepo(), 0, logger.NewNop())
		_, err := svc.SetOverride(context.Background(), &models.SetOverrideRequest{
			Date:    christmas,
			Windows: []string{"09:00-12:00", "11:30-13:00"},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects invalid date", func(t *testing.T) {
		svc := NewService(newFakeOverrideRepo(), 0, logger.NewNop())
		_, err := svc.SetOverride(context.Background(), &models.SetOverrideRequest{Closed: true})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("wraps repository errors", func(t *testing.T) {
		repo := newFakeOverrideRepo()
		repo.failErr = errors.New("connection reset")
		svc := NewService(repo, 0, logger.NewNop())

		_, err := svc.SetOverride(context.Background(), &models.SetOverrideRequest{Date: christmas, Closed: true})
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestService_GetAndDeleteOverride(t *testing.T) {
	repo := newFakeOverrideRepo()
	svc := NewService(repo, 0, logger.NewNop())
	ctx := context.Background()

	_, err := svc.GetOverride(ctx, christmas)
	assert.ErrorIs(t, err, ErrOverrideNotFound)

	_, err = svc.SetOverride(ctx, &models.SetOverrideRequest{Date: christmas, Closed: true})
	require.NoError(t, err)

	got, err := svc.GetOverride(ctx, christmas)
	require.NoError(t, err)
	assert.True(t, got.Closed)

	require.NoError(t, svc.DeleteOverride(ctx, christmas, 1))
	assert.ErrorIs(t, svc.DeleteOverride(ctx, christmas, 1), ErrOverrideNotFound)
}

func TestService_ListOverrides(t *testing.T) {
	repo := newFakeOverrideRepo()
	svc := NewService(repo, 10, logger.NewNop())
	ctx := context.Background()

	for _, d := range []civiltime.Date{christmas, christmas.AddDays(1), christmas.AddDays(20)} {
		_, err := svc.SetOverride(ctx, &models.SetOverrideRequest{Date: d, Closed: true})
		require.NoError(t, err)
	}

	list, err := svc.ListOverrides(ctx, christmas, christmas.AddDays(9))
	require.NoError(t, err)
	assert.Len(t, list.Overrides, 2)

	_, err = svc.ListOverrides(ctx, christmas, christmas.AddDays(10))
	assert.ErrorIs(t, err, ErrRangeTooLarge)

	_, err = svc.ListOverrides(ctx, christmas, christmas.AddDays(-1))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
