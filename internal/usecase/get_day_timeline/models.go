package get_day_timeline

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

// Request модель запроса таймлайна дня
type Request struct {
	Date civiltime.Date
}

// Response модель ответа с раскладкой дня
type Response struct {
	Date          civiltime.Date
	Status        domain.DayStatus
	EarliestStart float64 // Начало видимой области, дробные часы
	LatestEnd     float64 // Конец видимой области, дробные часы
	Windows       []domain.AvailabilityWindow
	Items         []Item
	Omitted       []string // ID элементов, не попавших ни в одно окно
	IsPast        bool
}

// Item элемент таймлайна с позицией в процентах от видимой области
type Item struct {
	ID            string
	Kind          domain.ItemKind
	Title         string
	Status        string
	Start         time.Time
	End           time.Time
	WindowIndex   int
	TopPercent    float64
	HeightPercent float64
}
