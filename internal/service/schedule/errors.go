package schedule

import "errors"

var (
	// ErrOverrideNotFound возвращается, когда исключение для даты не найдено
	ErrOverrideNotFound = errors.New("override not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrRangeTooLarge возвращается, когда запрошенный диапазон дат слишком велик
	ErrRangeTooLarge = errors.New("date range is too large")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
