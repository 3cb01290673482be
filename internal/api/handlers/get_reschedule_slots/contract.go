package get_reschedule_slots

import (
	"context"

	getRescheduleSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_reschedule_slots"
)

type GetRescheduleSlotsUseCase interface {
	Execute(ctx context.Context, req *getRescheduleSlots.Request) (*getRescheduleSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
