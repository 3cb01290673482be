package hours

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

type stubOverrides struct {
	list []domain.DayOverride
	err  error
}

func (s *stubOverrides) GetOverrides(_ context.Context, _, _ civiltime.Date) ([]domain.DayOverride, error) {
	return s.list, s.err
}

func tr(start, end string) domain.TimeRange {
	return domain.TimeRange{Start: types.MustTimeString(start), End: types.MustTimeString(end)}
}

func weekdays() WeeklyPlan {
	plan := WeeklyPlan{time.Saturday: {tr("10:00", "14:00")}}
	for wd := time.Monday; wd <= time.Friday; wd++ {
		plan[wd] = []domain.TimeRange{tr("09:00", "12:00"), tr("13:00", "18:00")}
	}
	return plan
}

func date(m time.Month, d int) civiltime.Date {
	return civiltime.Date{Year: 2024, Month: m, Day: d}
}

func TestSource_Windows(t *testing.T) {
	overrides := &stubOverrides{list: []domain.DayOverride{
		{Date: date(time.December, 24), Windows: []domain.TimeRange{tr("09:00", "13:00")}},
		{Date: date(time.December, 25), Closed: true, Windows: []domain.TimeRange{tr("09:00", "10:00")}},
	}}

	src, err := NewSource(weekdays(), overrides, nil, logger.NewNop())
	require.NoError(t, err)

	// 21 декабря 2024 - суббота, 22 - воскресенье
	windows, err := src.Windows(context.Background(), date(time.December, 21), date(time.December, 25))
	require.NoError(t, err)

	byDay := map[string][]string{}
	for _, w := range windows {
		byDay[w.Day.Key()] = append(byDay[w.Day.Key()], w.Start.String()+"-"+w.End.String())
	}

	assert.Equal(t, map[string][]string{
		"2024-12-21": {"10:00-14:00"},
		"2024-12-23": {"09:00-12:00", "13:00-18:00"},
		"2024-12-24": {"09:00-13:00"},
	}, byDay)
}

func TestSource_Windows_Errors(t *testing.T) {
	src, err := NewSource(weekdays(), &stubOverrides{err: errors.New("db down")}, nil, logger.NewNop())
	require.NoError(t, err)

	_, err = src.Windows(context.Background(), date(time.June, 1), date(time.June, 2))
	assert.ErrorIs(t, err, ErrOverrides)

	_, err = src.Windows(context.Background(), date(time.June, 2), date(time.June, 1))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestSource_WithoutOverrideStore(t *testing.T) {
	src, err := NewSource(weekdays(), nil, nil, logger.NewNop())
	require.NoError(t, err)

	windows, err := src.Windows(context.Background(), date(time.June, 10), date(time.June, 10))
	require.NoError(t, err)
	assert.Len(t, windows, 2)
}

func TestSource_Breaks_KeepWallTimeAcrossDST(t *testing.T) {
	lunch := domain.RecurringBreak{
		ID:              "lunch",
		Title:           "Lunch",
		Rule:            "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR",
		Since:           date(time.January, 1),
		Start:           types.MustTimeString("12:00"),
		DurationMinutes: 60,
	}

	src, err := NewSource(weekdays(), nil, []domain.RecurringBreak{lunch}, logger.NewNop())
	require.NoError(t, err)

	// пятница 8 марта (EST) и понедельник 11 марта (EDT)
	blocks := src.Breaks(date(time.March, 8), date(time.March, 11))
	require.Len(t, blocks, 2)

	assert.Equal(t, time.Date(2024, time.March, 8, 17, 0, 0, 0, time.UTC), blocks[0].Start)
	assert.Equal(t, time.Date(2024, time.March, 11, 16, 0, 0, 0, time.UTC), blocks[1].Start)
	assert.Equal(t, time.Hour, blocks[1].End.Sub(blocks[1].Start))
	assert.Equal(t, domain.BlockKindBreak, blocks[0].Kind)
	assert.Equal(t, "lunch", blocks[0].RuleID)
	assert.Equal(t, "rule-lunch-20240308T170000Z", blocks[0].TimelineItem().ID)
}

func TestSource_Breaks_SkipsSpringForwardGap(t *testing.T) {
	night := domain.RecurringBreak{
		ID:              "cleaning",
		Rule:            "FREQ=DAILY",
		Since:           date(time.March, 1),
		Start:           types.MustTimeString("02:30"),
		DurationMinutes: 15,
	}

	src, err := NewSource(nil, nil, []domain.RecurringBreak{night}, logger.NewNop())
	require.NoError(t, err)

	blocks := src.Breaks(date(time.March, 9), date(time.March, 11))
	require.Len(t, blocks, 2)
	assert.Equal(t, "2024-03-09", civiltime.DateOf(blocks[0].Start).Key())
	assert.Equal(t, "2024-03-11", civiltime.DateOf(blocks[1].Start).Key())
}

func TestNewSource_InvalidRule(t *testing.T) {
	_, err := NewSource(nil, nil, []domain.RecurringBreak{{ID: "bad", Rule: "FREQ=SOMETIMES"}}, logger.NewNop())
	assert.ErrorIs(t, err, ErrInvalidRule)
}
