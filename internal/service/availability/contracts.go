package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Provider внешний источник свободных слотов
type Provider interface {
	GetAvailability(ctx context.Context, start, end time.Time, timezone string) ([]domain.AvailableSlot, error)
}

// Cache кэш ответов провайдера по каноническому ключу окна
type Cache interface {
	Get(ctx context.Context, key string) ([]domain.AvailableSlot, bool, error)
	Set(ctx context.Context, key string, slots []domain.AvailableSlot, ttl time.Duration) error
}

// Metrics интерфейс метрик кэша
type Metrics interface {
	IncCacheRequest(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
