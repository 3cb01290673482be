package availability

import "errors"

var (
	// ErrInvalidWindow возвращается для пустого окна рабочих дней
	ErrInvalidWindow = errors.New("invalid working-day window")

	// ErrUnavailable возвращается, когда провайдер не ответил
	ErrUnavailable = errors.New("availability provider unavailable")
)
