package models

import "github.com/m04kA/SMC-ScheduleService/internal/domain"

// Result ответ провайдера для окна рабочих дней
type Result struct {
	Key       string
	Slots     []domain.AvailableSlot
	FromCache bool
}
