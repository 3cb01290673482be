package schedule

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

// OverrideRepository интерфейс репозитория исключений из расписания
type OverrideRepository interface {
	GetOverrides(ctx context.Context, from, to civiltime.Date) ([]domain.DayOverride, error)
	UpsertOverride(ctx context.Context, o domain.DayOverride) error
	DeleteOverride(ctx context.Context, day civiltime.Date) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
