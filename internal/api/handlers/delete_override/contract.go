package delete_override

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

type ScheduleService interface {
	DeleteOverride(ctx context.Context, day civiltime.Date, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
