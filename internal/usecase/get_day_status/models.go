package get_day_status

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

// Request модель запроса статуса дня
type Request struct {
	Date civiltime.Date // Гражданская дата в часовом поясе бизнеса
}

// Response модель ответа со статусом дня
type Response struct {
	Date             civiltime.Date
	Status           domain.DayStatus
	WindowCount      int
	BookingCount     int
	AvailableMinutes float64
	BookedMinutes    float64
	Utilization      float64 // Доля занятого времени, 0..1+
	IsPast           bool    // День целиком в прошлом
	IsToday          bool
}
