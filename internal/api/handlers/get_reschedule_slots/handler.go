package get_reschedule_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	getRescheduleSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_reschedule_slots"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

// SelectionScopeHeader идентифицирует выбор клиента (вкладку, сессию).
// Новый запрос в том же scope делает предыдущий устаревшим.
const SelectionScopeHeader = "X-Selection-Scope"

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgNotFound         = "бронирование не найдено"
	msgNotReschedulable = "бронирование нельзя перенести в текущем статусе"
	msgUnavailable      = "сервис свободных слотов временно недоступен"
	msgInvalidInput     = "некорректные входные данные"
)

type Handler struct {
	useCase GetRescheduleSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetRescheduleSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}/reschedule-slots
// Query params: target (YYYY-MM-DD, опционально)
// Headers: X-User-ID (обязательно), X-Selection-Scope (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("GET /bookings/{id}/reschedule-slots - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/{id}/reschedule-slots - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &getRescheduleSlots.Request{
		BookingID: bookingID,
		Scope:     r.Header.Get(SelectionScopeHeader),
	}
	if req.Scope == "" {
		req.Scope = "user-" + strconv.FormatInt(userID, 10)
	}

	if s := r.URL.Query().Get("target"); s != "" {
		target, ok := civiltime.ParseDate(s)
		if !ok {
			h.logger.Warn("GET /bookings/{id}/reschedule-slots - Invalid target: %q", s)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Target = target
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getRescheduleSlots.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id}/reschedule-slots - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, getRescheduleSlots.ErrNotReschedulable):
			h.logger.Warn("GET /bookings/{id}/reschedule-slots - Not reschedulable: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgNotReschedulable)

		case errors.Is(err, getRescheduleSlots.ErrAvailabilityUnavailable):
			h.logger.Error("GET /bookings/{id}/reschedule-slots - Availability unavailable: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondServiceUnavailable(w, msgUnavailable)

		case errors.Is(err, getRescheduleSlots.ErrInvalidInput):
			h.logger.Warn("GET /bookings/{id}/reschedule-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /bookings/{id}/reschedule-slots - Failed to get slots: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id}/reschedule-slots - booking_id=%d, user_id=%d, slots=%d, stale=%t",
		bookingID, userID, result.SlotCount, result.Stale)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
