package hours

import "errors"

var (
	// ErrInvalidRule возвращается, когда RRULE перерыва не удалось разобрать
	ErrInvalidRule = errors.New("hours: invalid recurring break rule")

	// ErrInvalidRange возвращается, когда начало периода позже конца
	ErrInvalidRange = errors.New("hours: invalid date range")

	// ErrOverrides возвращается при ошибке чтения исключений
	ErrOverrides = errors.New("hours: failed to load day overrides")
)
