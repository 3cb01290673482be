package provider

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("provider client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от провайдера
	ErrInvalidResponse = errors.New("provider client: invalid response")

	// ErrUnavailable возвращается, когда провайдер недоступен (сеть, 5xx, таймаут)
	ErrUnavailable = errors.New("provider client: availability source unavailable")

	// ErrRateLimited возвращается при превышении лимита запросов (локального или провайдера)
	ErrRateLimited = errors.New("provider client: rate limited")

	// ErrInvalidRange возвращается, когда начало диапазона позже конца
	ErrInvalidRange = errors.New("provider client: invalid range")
)
