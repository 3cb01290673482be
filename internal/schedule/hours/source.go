package hours

import (
	"context"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

// MaxBreakOccurrences ограничивает число вхождений одного перерыва за запрос
const MaxBreakOccurrences = 1000

// WeeklyPlan рабочие окна по дням недели. Пустой список - выходной.
type WeeklyPlan map[time.Weekday][]domain.TimeRange

type compiledBreak struct {
	src  domain.RecurringBreak
	rule *rrule.RRule
}

// Source строит окна доступности и перерывы для диапазона гражданских дат
type Source struct {
	plan      WeeklyPlan
	overrides OverrideSource
	breaks    []compiledBreak
	logger    Logger
}

// NewSource компилирует правила перерывов. overrides может быть nil,
// тогда используется только недельное расписание.
func NewSource(plan WeeklyPlan, overrides OverrideSource, breaks []domain.RecurringBreak, logger Logger) (*Source, error) {
	compiled := make([]compiledBreak, 0, len(breaks))
	for _, b := range breaks {
		r, err := rrule.StrToRRule(b.Rule)
		if err != nil {
			return nil, fmt.Errorf("%w: break %q: %v", ErrInvalidRule, b.ID, err)
		}

		// правило считается в "плавающем" времени: поля wall-clock в рамке UTC
		since := b.Since
		if since.IsZero() {
			since = civiltime.Date{Year: 2000, Month: time.January, Day: 1}
		}
		r.DTStart(time.Date(since.Year, since.Month, since.Day, b.Start.Hour(), b.Start.Minute(), 0, 0, time.UTC))

		compiled = append(compiled, compiledBreak{src: b, rule: r})
	}

	return &Source{
		plan:      plan,
		overrides: overrides,
		breaks:    compiled,
		logger:    logger,
	}, nil
}

// Windows возвращает окна доступности для каждого дня в [from, to].
// Исключение для даты полностью заменяет недельное расписание этого дня.
func (s *Source) Windows(ctx context.Context, from, to civiltime.Date) ([]domain.AvailabilityWindow, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange, from.Key(), to.Key())
	}

	overrides := make(map[civiltime.Date]domain.DayOverride)
	if s.overrides != nil {
		list, err := s.overrides.GetOverrides(ctx, from, to)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOverrides, err)
		}
		for _, o := range list {
			overrides[o.Date] = o
		}
	}

	var windows []domain.AvailabilityWindow
	for d := from; !d.After(to); d = d.AddDays(1) {
		ranges := s.plan[d.Weekday()]
		if o, ok := overrides[d]; ok {
			ranges = o.Windows
			if o.Closed {
				ranges = nil
			}
		}

		for _, r := range ranges {
			windows = append(windows, domain.AvailabilityWindow{Day: d, Start: r.Start, End: r.End})
		}
	}

	return windows, nil
}

// Breaks разворачивает повторяющиеся перерывы в блоки для дней [from, to].
// Вхождения, попадающие в несуществующее время (переход на летнее), пропускаются.
func (s *Source) Breaks(from, to civiltime.Date) []domain.ScheduleBlock {
	if to.Before(from) {
		return nil
	}

	rangeStart := time.Date(from.Year, from.Month, from.Day, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(to.Year, to.Month, to.Day, 23, 59, 59, 0, time.UTC)

	var blocks []domain.ScheduleBlock
	for _, b := range s.breaks {
		occurrences := b.rule.Between(rangeStart, rangeEnd, true)
		if len(occurrences) > MaxBreakOccurrences {
			s.logger.Warn("Break %s: %d occurrences in %s..%s, truncated to %d",
				b.src.ID, len(occurrences), from.Key(), to.Key(), MaxBreakOccurrences)
			occurrences = occurrences[:MaxBreakOccurrences]
		}

		for _, wall := range occurrences {
			start, ok := civiltime.FromCivil(civiltime.CivilDateTime{
				Year:   wall.Year(),
				Month:  wall.Month(),
				Day:    wall.Day(),
				Hour:   wall.Hour(),
				Minute: wall.Minute(),
			})
			if !ok {
				s.logger.Warn("Break %s: occurrence %s does not exist in civil time, skipped",
					b.src.ID, wall.Format("2006-01-02T15:04"))
				continue
			}

			blocks = append(blocks, domain.ScheduleBlock{
				Kind:   domain.BlockKindBreak,
				Title:  b.src.Title,
				Start:  start,
				End:    start.Add(time.Duration(b.src.DurationMinutes) * time.Minute),
				RuleID: b.src.ID,
			})
		}
	}

	return blocks
}
