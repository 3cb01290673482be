package get_day_status

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/engine/daystatus"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

// UseCase use case для получения статуса загрузки дня
type UseCase struct {
	planLoader   PlanLoader
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(planLoader PlanLoader, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		planLoader:   planLoader,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения статуса дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDayStatus: validation failed: %v", err)
		return nil, err
	}
	uc.logger.Info("GetDayStatus: date=%s", req.Date)

	// 2. Получаем текущую гражданскую дату
	today := civiltime.DateOf(uc.timeProvider.Now())

	// 3. Загружаем окна и активные бронирования дня
	plan, err := uc.planLoader.Load(ctx, req.Date, req.Date, false)
	if err != nil {
		uc.logger.Error("GetDayStatus: failed to load plan for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to load plan: %v", ErrInternal, err)
	}

	// 4. Классифицируем
	summary := daystatus.Summarize(plan.DayWindows(req.Date), plan.DayBookings(req.Date), req.Date)
	uc.metrics.IncDayStatus(string(summary.Status))

	uc.logger.Info("GetDayStatus: %s is %s (%.0f/%.0f min)",
		req.Date, summary.Status, summary.BookedMinutes, summary.AvailableMinutes)

	return &Response{
		Date:             req.Date,
		Status:           summary.Status,
		WindowCount:      summary.WindowCount,
		BookingCount:     summary.BookingCount,
		AvailableMinutes: summary.AvailableMinutes,
		BookedMinutes:    summary.BookedMinutes,
		Utilization:      summary.Utilization(),
		IsPast:           req.Date.Before(today),
		IsToday:          req.Date == today,
	}, nil
}
