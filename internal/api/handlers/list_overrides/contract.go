package list_overrides

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

type ScheduleService interface {
	ListOverrides(ctx context.Context, from, to civiltime.Date) (*models.OverrideListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
