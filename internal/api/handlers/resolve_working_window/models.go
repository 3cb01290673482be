package resolve_working_window

import (
	"errors"
	"net/url"

	resolveWorkingWindow "github.com/m04kA/SMC-ScheduleService/internal/usecase/resolve_working_window"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

var (
	errInvalidTarget  = errors.New("invalid target date")
	errInvalidInstant = errors.New("invalid instant")
)

// WorkingWindowResponse HTTP response model
type WorkingWindowResponse struct {
	Target     string   `json:"target"`
	Days       []string `json:"days"`
	RangeStart string   `json:"rangeStart"`
	RangeEnd   string   `json:"rangeEnd"`
	Key        string   `json:"key"`
	Excluded   []string `json:"excludedWeekdays"`
	Warning    string   `json:"warning,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *resolveWorkingWindow.Response) *WorkingWindowResponse {
	days := make([]string, len(resp.Days))
	for i, d := range resp.Days {
		days[i] = d.Key()
	}

	excluded := make([]string, len(resp.Excluded))
	for i, wd := range resp.Excluded {
		excluded[i] = wd.String()
	}

	out := &WorkingWindowResponse{
		Target:   resp.Target.Key(),
		Days:     days,
		Key:      resp.Key,
		Excluded: excluded,
		Warning:  resp.Warning,
	}
	if !resp.RangeStart.IsZero() {
		out.RangeStart = civiltime.ToCivil(resp.RangeStart).String()
		out.RangeEnd = civiltime.ToCivil(resp.RangeEnd).String()
	}
	return out
}

// ToUseCaseRequest создает запрос use case из query параметров target или instant
func ToUseCaseRequest(query url.Values) (*resolveWorkingWindow.Request, error) {
	req := &resolveWorkingWindow.Request{}

	if s := query.Get("target"); s != "" {
		d, ok := civiltime.ParseDate(s)
		if !ok {
			return nil, errInvalidTarget
		}
		req.Target = d
		return req, nil
	}

	if s := query.Get("instant"); s != "" {
		t, ok := civiltime.ParseInstant(s)
		if !ok {
			return nil, errInvalidInstant
		}
		req.Instant = t
	}

	return req, nil
}
