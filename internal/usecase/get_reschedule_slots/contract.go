package get_reschedule_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/engine/workingday"
	"github.com/m04kA/SMC-ScheduleService/internal/service/availability/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/selection"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// AvailabilityFetcher получает свободные слоты для окна рабочих дней
type AvailabilityFetcher interface {
	Fetch(ctx context.Context, w workingday.Window) (*models.Result, error)
}

// SelectionTracker отслеживает последний выбор в рамках одного клиента
type SelectionTracker interface {
	Begin(scope, key string) selection.Ticket
	Finish(tk selection.Ticket) bool
}

// Metrics интерфейс метрик
type Metrics interface {
	IncExhaustedSearch()
	IncStaleSelection()
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
