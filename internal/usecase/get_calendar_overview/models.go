package get_calendar_overview

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

// Request модель запроса обзора календаря за диапазон [From, To]
type Request struct {
	From civiltime.Date
	To   civiltime.Date
}

// Response модель ответа со статусами дней
type Response struct {
	From   civiltime.Date
	To     civiltime.Date
	Days   []Day
	Counts map[domain.DayStatus]int // Количество дней в каждом статусе
}

// Day статус одного дня календаря
type Day struct {
	Date             civiltime.Date
	Status           domain.DayStatus
	AvailableMinutes float64
	BookedMinutes    float64
	Utilization      float64
	IsPast           bool
	IsToday          bool
}
