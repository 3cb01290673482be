package list_overrides

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

const (
	msgInvalidRange  = "укажите from и to в формате YYYY-MM-DD, from <= to"
	msgRangeTooLarge = "слишком большой диапазон дат"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/overrides
// Query params: from, to (YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	from, okFrom := civiltime.ParseDate(query.Get("from"))
	to, okTo := civiltime.ParseDate(query.Get("to"))
	if !okFrom || !okTo {
		h.logger.Warn("GET /overrides - Invalid range: from=%q, to=%q", query.Get("from"), query.Get("to"))
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	result, err := h.service.ListOverrides(r.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrRangeTooLarge):
			h.logger.Warn("GET /overrides - Range too large: %v", err)
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /overrides - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /overrides - Failed to list overrides: from=%s, to=%s, error=%v", from, to, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /overrides - %s..%s, found=%d", from, to, len(result.Overrides))
	handlers.RespondJSON(w, http.StatusOK, result)
}
