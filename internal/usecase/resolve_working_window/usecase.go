package resolve_working_window

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/engine/workingday"
)

// UseCase use case для построения окна рабочих дней вокруг даты
type UseCase struct {
	excluded     []time.Weekday
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(excluded []time.Weekday, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		excluded:     excluded,
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

// Execute выполняет use case построения окна
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ResolveWorkingWindow: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем целевой день
	var w workingday.Window
	switch {
	case !req.Target.IsZero():
		w = workingday.Resolve(req.Target, uc.excluded...)
	case !req.Instant.IsZero():
		w = workingday.ResolveInstant(req.Instant, uc.excluded...)
	default:
		w = workingday.ResolveInstant(uc.timeProvider.Now(), uc.excluded...)
	}

	// 3. Неполное окно - признак неверной конфигурации выходных
	resp := &Response{
		Target:     w.Target,
		Days:       w.Days,
		RangeStart: w.RangeStart,
		RangeEnd:   w.RangeEnd,
		Key:        w.Key(),
		Excluded:   uc.excluded,
	}
	if w.Warning != nil {
		uc.metrics.IncExhaustedSearch()
		uc.logger.Warn("ResolveWorkingWindow: target=%s: %v", w.Target, w.Warning)
		resp.Warning = w.Warning.Error()
	}

	uc.logger.Info("ResolveWorkingWindow: target=%s window=%s", w.Target, w.Key())
	return resp, nil
}
