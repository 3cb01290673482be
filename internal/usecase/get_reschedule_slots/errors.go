package get_reschedule_slots

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrNotReschedulable возвращается для бронирований, которые нельзя перенести
	ErrNotReschedulable = errors.New("booking cannot be rescheduled in its current status")

	// ErrAvailabilityUnavailable возвращается, когда источник свободных слотов недоступен
	ErrAvailabilityUnavailable = errors.New("availability source unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
