package get_day_timeline

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/engine/daystatus"
	"github.com/m04kA/SMC-ScheduleService/internal/engine/timeline"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

// UseCase use case для построения таймлайна дня
type UseCase struct {
	planLoader   PlanLoader
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(planLoader PlanLoader, logger Logger) *UseCase {
	return &UseCase{
		planLoader:   planLoader,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case построения таймлайна
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDayTimeline: validation failed: %v", err)
		return nil, err
	}
	uc.logger.Info("GetDayTimeline: date=%s", req.Date)

	today := civiltime.DateOf(uc.timeProvider.Now())

	// 2. Загружаем окна, бронирования и блокировки дня
	plan, err := uc.planLoader.Load(ctx, req.Date, req.Date, true)
	if err != nil {
		uc.logger.Error("GetDayTimeline: failed to load plan for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to load plan: %v", ErrInternal, err)
	}

	windows := plan.DayWindows(req.Date)

	// 3. Раскладываем элементы по окнам
	layout := timeline.Layout(windows, plan.TimelineItems(req.Date))
	if len(layout.Omitted) > 0 {
		uc.logger.Warn("GetDayTimeline: %d items outside working windows on %s: %v",
			len(layout.Omitted), req.Date, layout.Omitted)
	}

	items := make([]Item, 0, len(layout.Positions))
	for _, p := range layout.Positions {
		items = append(items, Item{
			ID:            p.Item.ID,
			Kind:          p.Item.Kind,
			Title:         p.Item.Title,
			Status:        p.Item.Status,
			Start:         p.Item.Start,
			End:           p.Item.End,
			WindowIndex:   p.WindowIndex,
			TopPercent:    p.TopPercent,
			HeightPercent: p.HeightPercent,
		})
	}

	return &Response{
		Date:          req.Date,
		Status:        daystatus.Classify(windows, plan.DayBookings(req.Date), req.Date),
		EarliestStart: layout.EarliestStart,
		LatestEnd:     layout.LatestEnd,
		Windows:       windows,
		Items:         items,
		Omitted:       layout.Omitted,
		IsPast:        req.Date.Before(today),
	}, nil
}
