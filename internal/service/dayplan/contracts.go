package dayplan

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

// WindowSource источник окон доступности и повторяющихся перерывов
type WindowSource interface {
	Windows(ctx context.Context, from, to civiltime.Date) ([]domain.AvailabilityWindow, error)
	Breaks(from, to civiltime.Date) []domain.ScheduleBlock
}

// BookingRepository интерфейс репозитория бронирований (только чтение)
type BookingRepository interface {
	ListInRange(ctx context.Context, from, to time.Time, includeInactive bool) ([]domain.Booking, error)
}

// BlockRepository интерфейс репозитория разовых блокировок
type BlockRepository interface {
	ListBlocks(ctx context.Context, from, to time.Time) ([]domain.ScheduleBlock, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
