package get_reschedule_slots

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getRescheduleSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_reschedule_slots"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

// RescheduleSlotsResponse HTTP response model
type RescheduleSlotsResponse struct {
	Booking    BookingInfo `json:"booking"`
	Target     string      `json:"target"`
	RangeStart string      `json:"rangeStart"`
	RangeEnd   string      `json:"rangeEnd"`
	Days       []DaySlots  `json:"days"`
	SlotCount  int         `json:"slotCount"`
	FromCache  bool        `json:"fromCache"`
	Stale      bool        `json:"stale"`
	Warning    string      `json:"warning,omitempty"`
}

// BookingInfo переносимое бронирование
type BookingInfo struct {
	ID          int64  `json:"id"`
	ServiceName string `json:"serviceName"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Status      string `json:"status"`
}

// DaySlots свободные слоты одного дня окна
type DaySlots struct {
	Date  string `json:"date"`
	Slots []Slot `json:"slots"`
}

type Slot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response.
// Дни окна без слотов тоже попадают в ответ с пустым списком.
func FromUseCaseResponse(resp *getRescheduleSlots.Response) *RescheduleSlotsResponse {
	byDay := make(map[civiltime.Date][]domain.AvailableSlot, len(resp.Slots))
	for _, ds := range resp.Slots {
		byDay[ds.Day] = ds.Slots
	}

	days := make([]DaySlots, 0, len(resp.Days))
	for _, d := range resp.Days {
		slots := byDay[d]
		out := make([]Slot, len(slots))
		for i, s := range slots {
			out[i] = Slot{Start: formatInstant(s.Start), End: formatInstant(s.End)}
		}
		days = append(days, DaySlots{Date: d.Key(), Slots: out})
	}

	result := &RescheduleSlotsResponse{
		Target:    resp.Target.Key(),
		Days:      days,
		SlotCount: resp.SlotCount,
		FromCache: resp.FromCache,
		Stale:     resp.Stale,
		Warning:   resp.Warning,
	}
	if !resp.RangeStart.IsZero() {
		result.RangeStart = formatInstant(resp.RangeStart)
		result.RangeEnd = formatInstant(resp.RangeEnd)
	}
	if b := resp.Booking; b != nil {
		result.Booking = BookingInfo{
			ID:          b.ID,
			ServiceName: b.ServiceName,
			Start:       formatInstant(b.Start),
			End:         formatInstant(b.End),
			Status:      string(b.Status),
		}
	}
	return result
}

func formatInstant(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return civiltime.ToCivil(t).String()
}
