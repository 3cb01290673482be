package delete_override

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID = "отсутствует ID пользователя"
	msgNotFound      = "для даты нет особого расписания"
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

// Handle DELETE /api/v1/days/{date}/override
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := mux.Vars(r)["date"]
	day, ok := civiltime.ParseDate(dateStr)
	if !ok {
		h.logger.Warn("DELETE /days/{date}/override - Invalid date: %q", dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /days/{date}/override - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.DeleteOverride(r.Context(), day, userID); err != nil {
		if errors.Is(err, schedule.ErrOverrideNotFound) {
			h.logger.Warn("DELETE /days/{date}/override - Not found: date=%s", day)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /days/{date}/override - Failed to delete override: date=%s, error=%v", day, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /days/{date}/override - Override deleted: date=%s, user_id=%d", day, userID)
	handlers.RespondNoContent(w)
}
