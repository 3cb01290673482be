package get_day_status

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/service/dayplan/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

// PlanLoader загружает окна и бронирования за диапазон дат
type PlanLoader interface {
	Load(ctx context.Context, from, to civiltime.Date, withBlocks bool) (*models.Plan, error)
}

// Metrics интерфейс метрик классификации
type Metrics interface {
	IncDayStatus(status string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
