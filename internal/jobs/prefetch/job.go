// Package prefetch периодически прогревает кэш свободных слотов
// для окна рабочих дней вокруг текущей даты.
package prefetch

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/m04kA/SMC-ScheduleService/internal/engine/workingday"
)

const (
	// FallbackSpec используется, если расписание из конфига не разбирается
	FallbackSpec = "@every 5m"

	runTimeout = 30 * time.Second
)

// Job задача прогрева кэша по cron-расписанию
type Job struct {
	refresher    Refresher
	excluded     []time.Weekday
	spec         string
	metrics      Metrics
	logger       Logger
	timeProvider TimeProvider

	mu     sync.Mutex
	cron   *cron.Cron
	cancel context.CancelFunc
}

// NewJob создает задачу прогрева
func NewJob(refresher Refresher, spec string, excluded []time.Weekday, metrics Metrics, logger Logger) *Job {
	return &Job{
		refresher:    refresher,
		excluded:     excluded,
		spec:         spec,
		metrics:      metrics,
		logger:       logger,
		timeProvider: realTimeProvider{},
	}
}

// WithTimeProvider устанавливает кастомный провайдер времени (для тестирования)
func (j *Job) WithTimeProvider(tp TimeProvider) *Job {
	j.timeProvider = tp
	return j
}

// Start запускает cron. Повторный вызов без Stop ничего не делает.
func (j *Job) Start(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.cron != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))

	if _, err := c.AddFunc(j.spec, func() { j.RunOnce(runCtx) }); err != nil {
		j.logger.Warn("prefetch: invalid cron spec %q, falling back to %s: %v", j.spec, FallbackSpec, err)
		c = cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
		_, _ = c.AddFunc(FallbackSpec, func() { j.RunOnce(runCtx) })
	}

	c.Start()
	j.cron = c
	j.cancel = cancel
	j.logger.Info("prefetch: started")
}

// Stop останавливает cron и ждёт завершения текущего прогона
func (j *Job) Stop() {
	j.mu.Lock()
	c, cancel := j.cron, j.cancel
	j.cron, j.cancel = nil, nil
	j.mu.Unlock()

	if c == nil {
		return
	}

	cancel()
	<-c.Stop().Done()
	j.logger.Info("prefetch: stopped")
}

// RunOnce прогревает кэш для окна вокруг текущей даты
func (j *Job) RunOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	// 1. Окно рабочих дней вокруг сегодняшней даты
	w := workingday.ResolveInstant(j.timeProvider.Now(), j.excluded...)
	if w.Warning != nil {
		j.metrics.IncExhaustedSearch()
		j.logger.Warn("prefetch: %v", w.Warning)
	}

	// 2. Загружаем слоты в обход кэша
	start := time.Now()
	result, err := j.refresher.Refresh(ctx, w)
	if err != nil {
		j.metrics.IncPrefetchRun("error")
		j.logger.Error("prefetch: refresh %s failed: %v", w.Key(), err)
		return
	}

	j.metrics.IncPrefetchRun("ok")
	j.logger.Info("prefetch: %s refreshed, slots=%d, took=%s", result.Key, len(result.Slots), time.Since(start))
}
