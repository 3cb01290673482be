package get_calendar_overview

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	getCalendarOverview "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_calendar_overview"
)

const (
	msgMissingRange  = "укажите month (YYYY-MM) или from и to (YYYY-MM-DD)"
	msgInvalidDate   = "некорректный формат даты"
	msgInvalidRange  = "некорректный диапазон дат"
	msgRangeTooLarge = "слишком большой диапазон дат"
)

type Handler struct {
	useCase GetCalendarOverviewUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarOverviewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar
// Query params: month (YYYY-MM) или from, to (YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq, err := ToUseCaseRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid query: %v", err)
		if errors.Is(err, errMissingRange) {
			handlers.RespondBadRequest(w, msgMissingRange)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getCalendarOverview.ErrRangeTooLarge):
			h.logger.Warn("GET /calendar - Range too large: %v", err)
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		case errors.Is(err, getCalendarOverview.ErrInvalidInput):
			h.logger.Warn("GET /calendar - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /calendar - Failed to build overview: from=%s, to=%s, error=%v",
				useCaseReq.From, useCaseReq.To, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar - %s..%s, days=%d", result.From, result.To, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
