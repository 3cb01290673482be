package get_day_status

import (
	"math"

	getDayStatus "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_day_status"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

// DayStatusResponse HTTP response model
type DayStatusResponse struct {
	Date             string  `json:"date"`
	Status           string  `json:"status"`
	WindowCount      int     `json:"windowCount"`
	BookingCount     int     `json:"bookingCount"`
	AvailableMinutes float64 `json:"availableMinutes"`
	BookedMinutes    float64 `json:"bookedMinutes"`
	UtilizationPct   float64 `json:"utilizationPercent"`
	IsPast           bool    `json:"isPast"`
	IsToday          bool    `json:"isToday"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDayStatus.Response) *DayStatusResponse {
	return &DayStatusResponse{
		Date:             resp.Date.Key(),
		Status:           string(resp.Status),
		WindowCount:      resp.WindowCount,
		BookingCount:     resp.BookingCount,
		AvailableMinutes: resp.AvailableMinutes,
		BookedMinutes:    resp.BookedMinutes,
		UtilizationPct:   math.Round(resp.Utilization*1000) / 10,
		IsPast:           resp.IsPast,
		IsToday:          resp.IsToday,
	}
}

// ToUseCaseRequest создает запрос use case из параметра пути
func ToUseCaseRequest(dateStr string) (*getDayStatus.Request, bool) {
	date, ok := civiltime.ParseDate(dateStr)
	if !ok {
		return nil, false
	}
	return &getDayStatus.Request{Date: date}, true
}
