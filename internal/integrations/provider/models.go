package provider

// availabilityResponse ответ провайдера на запрос свободного времени
type availabilityResponse struct {
	Slots []slotDTO `json:"slots"`
}

// slotDTO время в ISO 8601, с явным смещением или без (тогда это время бизнеса)
type slotDTO struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// ErrorResponse модель ошибки от провайдера
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
