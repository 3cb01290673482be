package prefetch

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/engine/workingday"
	avmodels "github.com/m04kA/SMC-ScheduleService/internal/service/availability/models"
)

// Refresher перезагружает свободные слоты окна в обход кэша
type Refresher interface {
	Refresh(ctx context.Context, w workingday.Window) (*avmodels.Result, error)
}

type Metrics interface {
	IncPrefetchRun(result string)
	IncExhaustedSearch()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}
