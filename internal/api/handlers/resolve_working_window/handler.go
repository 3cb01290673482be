package resolve_working_window

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	resolveWorkingWindow "github.com/m04kA/SMC-ScheduleService/internal/usecase/resolve_working_window"
)

const (
	msgInvalidTarget  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInstant = "некорректный момент времени, ожидается ISO 8601"
	msgInvalidInput   = "некорректные входные данные"
)

type Handler struct {
	useCase ResolveWorkingWindowUseCase
	logger  Logger
}

func NewHandler(useCase ResolveWorkingWindowUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/working-window
// Query params: target (YYYY-MM-DD) или instant (ISO 8601), по умолчанию текущий момент
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq, err := ToUseCaseRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /working-window - Invalid query: %v", err)
		if errors.Is(err, errInvalidInstant) {
			handlers.RespondBadRequest(w, msgInvalidInstant)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidTarget)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if errors.Is(err, resolveWorkingWindow.ErrInvalidInput) {
			h.logger.Warn("GET /working-window - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("GET /working-window - Failed to resolve window: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	if result.Warning != "" {
		h.logger.Warn("GET /working-window - target=%s: %s", result.Target, result.Warning)
	}

	h.logger.Info("GET /working-window - target=%s key=%s", result.Target, result.Key)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
