package get_day_timeline

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	getDayTimeline "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_day_timeline"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetDayTimelineUseCase
	logger  Logger
}

func NewHandler(useCase GetDayTimelineUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/days/{date}/timeline
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := mux.Vars(r)["date"]

	useCaseReq, ok := ToUseCaseRequest(dateStr)
	if !ok {
		h.logger.Warn("GET /days/{date}/timeline - Invalid date: %q", dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getDayTimeline.ErrInvalidInput):
			h.logger.Warn("GET /days/{date}/timeline - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /days/{date}/timeline - Failed to build timeline: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /days/{date}/timeline - date=%s items=%d omitted=%d", dateStr, len(result.Items), len(result.Omitted))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
