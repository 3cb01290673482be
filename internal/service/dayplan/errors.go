package dayplan

import "errors"

var (
	// ErrInvalidRange возвращается, когда диапазон дат некорректен
	ErrInvalidRange = errors.New("invalid date range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
