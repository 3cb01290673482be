package get_day_timeline

import (
	"math"

	getDayTimeline "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_day_timeline"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

// TimelineResponse HTTP response model
type TimelineResponse struct {
	Date          string         `json:"date"`
	Status        string         `json:"status"`
	EarliestStart float64        `json:"earliestStartHour"`
	LatestEnd     float64        `json:"latestEndHour"`
	Windows       []Window       `json:"windows"`
	Items         []TimelineItem `json:"items"`
	Omitted       []string       `json:"omitted"`
	IsPast        bool           `json:"isPast"`
}

// Window рабочее окно дня
type Window struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// TimelineItem элемент таймлайна
type TimelineItem struct {
	ID            string  `json:"id"`
	Kind          string  `json:"kind"`
	Title         string  `json:"title"`
	Status        string  `json:"status,omitempty"`
	Start         string  `json:"start"`
	End           string  `json:"end"`
	WindowIndex   int     `json:"windowIndex"`
	TopPercent    float64 `json:"topPercent"`
	HeightPercent float64 `json:"heightPercent"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDayTimeline.Response) *TimelineResponse {
	windows := make([]Window, len(resp.Windows))
	for i, w := range resp.Windows {
		windows[i] = Window{Start: w.Start.String(), End: w.End.String()}
	}

	items := make([]TimelineItem, len(resp.Items))
	for i, it := range resp.Items {
		items[i] = TimelineItem{
			ID:            it.ID,
			Kind:          string(it.Kind),
			Title:         it.Title,
			Status:        it.Status,
			Start:         civiltime.ToCivil(it.Start).String(),
			End:           civiltime.ToCivil(it.End).String(),
			WindowIndex:   it.WindowIndex,
			TopPercent:    round2(it.TopPercent),
			HeightPercent: round2(it.HeightPercent),
		}
	}

	omitted := resp.Omitted
	if omitted == nil {
		omitted = []string{}
	}

	return &TimelineResponse{
		Date:          resp.Date.Key(),
		Status:        string(resp.Status),
		EarliestStart: resp.EarliestStart,
		LatestEnd:     resp.LatestEnd,
		Windows:       windows,
		Items:         items,
		Omitted:       omitted,
		IsPast:        resp.IsPast,
	}
}

// ToUseCaseRequest создает запрос use case из параметра пути
func ToUseCaseRequest(dateStr string) (*getDayTimeline.Request, bool) {
	date, ok := civiltime.ParseDate(dateStr)
	if !ok {
		return nil, false
	}
	return &getDayTimeline.Request{Date: date}, true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
