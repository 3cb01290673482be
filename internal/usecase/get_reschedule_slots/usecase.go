package get_reschedule_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/engine/workingday"
	bookingRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

// UseCase use case для получения свободных слотов при переносе бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	availability AvailabilityFetcher
	tracker      SelectionTracker
	excluded     []time.Weekday
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availability AvailabilityFetcher,
	tracker SelectionTracker,
	excluded []time.Weekday,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		availability: availability,
		tracker:      tracker,
		excluded:     excluded,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения слотов для переноса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetRescheduleSlots: validation failed: %v", err)
		return nil, err
	}
	uc.logger.Info("GetRescheduleSlots: booking=%d, target=%s, scope=%q", req.BookingID, req.Target, req.Scope)

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()
	today := civiltime.DateOf(now)

	// 3. Получаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("GetRescheduleSlots: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("GetRescheduleSlots: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 4. Проверяем, что бронирование можно перенести
	if !booking.CanBeRescheduled() {
		uc.logger.Warn("GetRescheduleSlots: booking id=%d has status %s", booking.ID, booking.Status)
		return nil, fmt.Errorf("%w: status %s", ErrNotReschedulable, booking.Status)
	}

	// 5. Определяем целевой день: явно указанный, иначе день бронирования.
	// Прошедшие дни заменяются сегодняшним.
	target := req.Target
	if target.IsZero() && !booking.Start.IsZero() {
		target = civiltime.DateOf(booking.Start)
	}
	if target.IsZero() || target.Before(today) {
		target = today
	}

	// 6. Строим окно рабочих дней вокруг цели
	window := workingday.Resolve(target, uc.excluded...)
	if window.Warning != nil {
		uc.metrics.IncExhaustedSearch()
		uc.logger.Warn("GetRescheduleSlots: partial window around %s: %v", target, window.Warning)
	}

	resp := &Response{
		BookingID:  booking.ID,
		Booking:    booking,
		Target:     target,
		Days:       window.Days,
		RangeStart: window.RangeStart,
		RangeEnd:   window.RangeEnd,
		Slots:      []workingday.DaySlots{},
	}
	if window.Warning != nil {
		resp.Warning = window.Warning.Error()
	}

	// 7. Регистрируем выбор и запрашиваем слоты
	ticket := uc.tracker.Begin(req.Scope, window.Key())
	result, err := uc.availability.Fetch(ctx, window)
	current := uc.tracker.Finish(ticket)
	if err != nil {
		uc.logger.Error("GetRescheduleSlots: failed to fetch availability for %s: %v", window.Key(), err)
		return nil, fmt.Errorf("%w: %v", ErrAvailabilityUnavailable, err)
	}

	// 8. Пока шёл запрос, клиент выбрал другой день: результат не применяется
	if !current {
		uc.metrics.IncStaleSelection()
		uc.logger.Info("GetRescheduleSlots: selection %s in scope %q superseded, result discarded",
			window.Key(), req.Scope)
		resp.Stale = true
		return resp, nil
	}

	// 9. Оставляем будущие слоты в днях окна
	slots := make([]domain.AvailableSlot, 0, len(result.Slots))
	for _, s := range result.Slots {
		if s.Start.IsZero() || s.IsPast(now) || !window.Contains(s.Day()) {
			continue
		}
		slots = append(slots, s)
	}

	// 10. Группируем по дням
	resp.Slots = workingday.GroupByDay(slots)
	resp.SlotCount = len(slots)
	resp.FromCache = result.FromCache

	uc.logger.Info("GetRescheduleSlots: booking=%d window=%s slots=%d (cache=%t)",
		booking.ID, window.Key(), resp.SlotCount, resp.FromCache)
	return resp, nil
}
