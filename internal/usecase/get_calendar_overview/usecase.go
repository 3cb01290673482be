package get_calendar_overview

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/engine/daystatus"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

// UseCase use case для обзора загрузки календаря (раскраска месяца)
type UseCase struct {
	planLoader   PlanLoader
	metrics      Metrics
	maxDays      int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. maxDays <= 0 - значение по умолчанию.
func NewUseCase(planLoader PlanLoader, metrics Metrics, maxDays int, logger Logger) *UseCase {
	if maxDays <= 0 {
		maxDays = domain.DefaultMaxCalendarDays
	}
	return &UseCase{
		planLoader:   planLoader,
		metrics:      metrics,
		maxDays:      maxDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case обзора календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req, uc.maxDays); err != nil {
		uc.logger.Warn("GetCalendarOverview: validation failed: %v", err)
		return nil, err
	}
	uc.logger.Info("GetCalendarOverview: %s..%s", req.From, req.To)

	today := civiltime.DateOf(uc.timeProvider.Now())

	// 2. Загружаем весь диапазон одним запросом
	plan, err := uc.planLoader.Load(ctx, req.From, req.To, false)
	if err != nil {
		uc.logger.Error("GetCalendarOverview: failed to load plan: %v", err)
		return nil, fmt.Errorf("%w: failed to load plan: %v", ErrInternal, err)
	}

	// 3. Классифицируем каждый день
	resp := &Response{
		From:   req.From,
		To:     req.To,
		Days:   make([]Day, 0, req.From.DaysUntil(req.To)+1),
		Counts: make(map[domain.DayStatus]int),
	}
	for d := req.From; !d.After(req.To); d = d.AddDays(1) {
		summary := daystatus.Summarize(plan.DayWindows(d), plan.DayBookings(d), d)
		uc.metrics.IncDayStatus(string(summary.Status))

		resp.Counts[summary.Status]++
		resp.Days = append(resp.Days, Day{
			Date:             d,
			Status:           summary.Status,
			AvailableMinutes: summary.AvailableMinutes,
			BookedMinutes:    summary.BookedMinutes,
			Utilization:      summary.Utilization(),
			IsPast:           d.Before(today),
			IsToday:          d == today,
		})
	}

	uc.logger.Info("GetCalendarOverview: %d days, open=%d partial=%d closed=%d", len(resp.Days),
		resp.Counts[domain.DayStatusOpen], resp.Counts[domain.DayStatusPartial], resp.Counts[domain.DayStatusClosed])
	return resp, nil
}
