package hours

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

// OverrideSource источник исключений из недельного расписания
type OverrideSource interface {
	GetOverrides(ctx context.Context, from, to civiltime.Date) ([]domain.DayOverride, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
