package dayplan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

type stubWindows struct {
	windows []domain.AvailabilityWindow
	breaks  []domain.ScheduleBlock
	err     error
}

func (s *stubWindows) Windows(_ context.Context, _, _ civiltime.Date) ([]domain.AvailabilityWindow, error) {
	return s.windows, s.err
}

func (s *stubWindows) Breaks(_, _ civiltime.Date) []domain.ScheduleBlock {
	return s.breaks
}

type stubBookings struct {
	bookings        []domain.Booking
	from, to        time.Time
	includeInactive bool
}

func (s *stubBookings) ListInRange(_ context.Context, from, to time.Time, includeInactive bool) ([]domain.Booking, error) {
	s.from, s.to, s.includeInactive = from, to, includeInactive
	return s.bookings, nil
}

type stubBlocks struct {
	blocks []domain.ScheduleBlock
	calls  int
}

func (s *stubBlocks) ListBlocks(_ context.Context, _, _ time.Time) ([]domain.ScheduleBlock, error) {
	s.calls++
	return s.blocks, nil
}

var (
	monday  = civiltime.Date{Year: 2024, Month: time.July, Day: 1}
	tuesday = monday.AddDays(1)
)

func TestService_Load(t *testing.T) {
	windows := &stubWindows{
		windows: []domain.AvailabilityWindow{
			{Day: monday, Start: types.MustTimeString("09:00"), End: types.MustTimeString("17:00")},
			{Day: tuesday, Start: types.MustTimeString("09:00"), End: types.MustTimeString("17:00")},
		},
		breaks: []domain.ScheduleBlock{{
			Kind:   domain.BlockKindBreak,
			RuleID: "lunch",
			Start:  time.Date(2024, time.July, 1, 16, 0, 0, 0, time.UTC),
			End:    time.Date(2024, time.July, 1, 17, 0, 0, 0, time.UTC),
		}},
	}
	bookings := &stubBookings{bookings: []domain.Booking{
		{ID: 1, Status: domain.StatusConfirmed,
			Start: time.Date(2024, time.July, 1, 14, 0, 0, 0, time.UTC),
			End:   time.Date(2024, time.July, 1, 15, 0, 0, 0, time.UTC)},
		{ID: 2, Status: domain.StatusCancelledByUser,
			Start: time.Date(2024, time.July, 1, 18, 0, 0, 0, time.UTC),
			End:   time.Date(2024, time.July, 1, 19, 0, 0, 0, time.UTC)},
		// 23:30 по Нью-Йорку во вторник, в UTC это уже среда
		{ID: 3, Status: domain.StatusPending,
			Start: time.Date(2024, time.July, 3, 3, 30, 0, 0, time.UTC),
			End:   time.Date(2024, time.July, 3, 3, 45, 0, 0, time.UTC)},
	}}
	blocks := &stubBlocks{blocks: []domain.ScheduleBlock{{
		ID: 7, Kind: domain.BlockKindMaintenance,
		Start: time.Date(2024, time.July, 1, 13, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.July, 1, 13, 30, 0, 0, time.UTC),
	}}}

	svc := NewService(windows, bookings, blocks, logger.NewNop())

	t.Run("without blocks", func(t *testing.T) {
		plan, err := svc.Load(context.Background(), monday, tuesday, false)
		require.NoError(t, err)

		assert.False(t, bookings.includeInactive)
		assert.Equal(t, time.Date(2024, time.July, 1, 4, 0, 0, 0, time.UTC), bookings.from)
		assert.Equal(t, time.Date(2024, time.July, 3, 3, 59, 59, 0, time.UTC), bookings.to)

		assert.Len(t, plan.Bookings, 2, "cancelled booking is dropped")
		assert.Empty(t, plan.Blocks)
		assert.Equal(t, []civiltime.Date{monday, tuesday}, plan.Days())
		assert.Len(t, plan.DayBookings(monday), 1)
		assert.Len(t, plan.DayBookings(tuesday), 1)
		assert.Len(t, plan.DayWindows(tuesday), 1)
	})

	t.Run("with blocks", func(t *testing.T) {
		plan, err := svc.Load(context.Background(), monday, monday, true)
		require.NoError(t, err)
		assert.Len(t, plan.Blocks, 2)

		items := plan.TimelineItems(monday)
		require.Len(t, items, 3)
		assert.Equal(t, "block-7", items[0].ID)
		assert.Equal(t, "booking-1", items[1].ID)
		assert.Equal(t, "rule-lunch-20240701T160000Z", items[2].ID)
	})

	t.Run("rejects reversed range", func(t *testing.T) {
		_, err := svc.Load(context.Background(), tuesday, monday, false)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("wraps source errors", func(t *testing.T) {
		failing := NewService(&stubWindows{err: errors.New("db down")}, bookings, nil, logger.NewNop())
		_, err := failing.Load(context.Background(), monday, monday, true)
		assert.ErrorIs(t, err, ErrInternal)
	})
}
