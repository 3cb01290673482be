package resolve_working_window

import (
	"context"

	resolveWorkingWindow "github.com/m04kA/SMC-ScheduleService/internal/usecase/resolve_working_window"
)

type ResolveWorkingWindowUseCase interface {
	Execute(ctx context.Context, req *resolveWorkingWindow.Request) (*resolveWorkingWindow.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
