package models

import (
	"fmt"
	"sort"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

// Request модели

// SetOverrideRequest запрос на установку особого расписания для даты
type SetOverrideRequest struct {
	UserID  int64          `json:"userId"`
	Date    civiltime.Date `json:"date"`
	Closed  bool           `json:"closed"`
	Windows []string       `json:"windows,omitempty"` // "HH:MM-HH:MM", игнорируется при Closed
	Reason  string         `json:"reason,omitempty"`
}

// ToDomainOverride разбирает окна и проверяет, что они не пересекаются
func (r *SetOverrideRequest) ToDomainOverride() (domain.DayOverride, error) {
	o := domain.DayOverride{
		Date:   r.Date,
		Closed: r.Closed,
		Reason: r.Reason,
	}
	if r.Closed {
		return o, nil
	}

	windows := make([]domain.TimeRange, 0, len(r.Windows))
	for _, raw := range r.Windows {
		tr, err := domain.ParseTimeRange(raw)
		if err != nil {
			return domain.DayOverride{}, err
		}
		windows = append(windows, tr)
	}

	sort.Slice(windows, func(i, j int) bool {
		return windows[i].Start.IsBefore(windows[j].Start)
	})
	for i := 1; i < len(windows); i++ {
		if windows[i].Start.IsBefore(windows[i-1].End) {
			return domain.DayOverride{}, fmt.Errorf("windows %s and %s overlap", windows[i-1], windows[i])
		}
	}

	o.Windows = windows
	return o, nil
}

// Response модели

// OverrideResponse ответ с особым расписанием даты
type OverrideResponse struct {
	Date    string   `json:"date"`
	Closed  bool     `json:"closed"`
	Windows []string `json:"windows"`
	Reason  string   `json:"reason,omitempty"`
}

// OverrideListResponse список исключений за диапазон
type OverrideListResponse struct {
	Overrides []OverrideResponse `json:"overrides"`
}

// FromDomainOverride конвертирует доменную модель в ответ
func FromDomainOverride(o domain.DayOverride) *OverrideResponse {
	windows := make([]string, 0, len(o.Windows))
	for _, w := range o.Windows {
		windows = append(windows, w.String())
	}
	return &OverrideResponse{
		Date:    o.Date.Key(),
		Closed:  o.Closed,
		Windows: windows,
		Reason:  o.Reason,
	}
}

// FromDomainOverrideList конвертирует список доменных моделей
func FromDomainOverrideList(list []domain.DayOverride) *OverrideListResponse {
	out := make([]OverrideResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *FromDomainOverride(o))
	}
	return &OverrideListResponse{Overrides: out}
}
