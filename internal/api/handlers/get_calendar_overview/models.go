package get_calendar_overview

import (
	"errors"
	"math"
	"net/url"
	"time"

	getCalendarOverview "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_calendar_overview"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

const monthLayout = "2006-01"

var (
	errMissingRange = errors.New("either month or from and to are required")
	errInvalidDate  = errors.New("invalid date")
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	From   string         `json:"from"`
	To     string         `json:"to"`
	Days   []CalendarDay  `json:"days"`
	Counts map[string]int `json:"counts"`
}

// CalendarDay статус одного дня
type CalendarDay struct {
	Date           string  `json:"date"`
	Status         string  `json:"status"`
	UtilizationPct float64 `json:"utilizationPercent"`
	IsPast         bool    `json:"isPast"`
	IsToday        bool    `json:"isToday"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendarOverview.Response) *CalendarResponse {
	days := make([]CalendarDay, len(resp.Days))
	for i, d := range resp.Days {
		days[i] = CalendarDay{
			Date:           d.Date.Key(),
			Status:         string(d.Status),
			UtilizationPct: math.Round(d.Utilization*1000) / 10,
			IsPast:         d.IsPast,
			IsToday:        d.IsToday,
		}
	}

	counts := make(map[string]int, len(resp.Counts))
	for status, n := range resp.Counts {
		counts[string(status)] = n
	}

	return &CalendarResponse{
		From:   resp.From.Key(),
		To:     resp.To.Key(),
		Days:   days,
		Counts: counts,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров.
// month=YYYY-MM задаёт весь месяц, иначе нужны from и to (YYYY-MM-DD).
func ToUseCaseRequest(query url.Values) (*getCalendarOverview.Request, error) {
	if month := query.Get("month"); month != "" {
		m, err := time.Parse(monthLayout, month)
		if err != nil {
			return nil, errInvalidDate
		}
		from := civiltime.Date{Year: m.Year(), Month: m.Month(), Day: 1}
		return &getCalendarOverview.Request{
			From: from,
			To:   civiltime.NewDate(m.Year(), m.Month()+1, 0),
		}, nil
	}

	fromStr, toStr := query.Get("from"), query.Get("to")
	if fromStr == "" || toStr == "" {
		return nil, errMissingRange
	}

	from, ok := civiltime.ParseDate(fromStr)
	if !ok {
		return nil, errInvalidDate
	}
	to, ok := civiltime.ParseDate(toStr)
	if !ok {
		return nil, errInvalidDate
	}

	return &getCalendarOverview.Request{From: from, To: to}, nil
}
