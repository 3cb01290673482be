package models

import (
	"sort"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

// Plan окна, активные бронирования и блокировки за диапазон дат [From, To]
type Plan struct {
	From     civiltime.Date
	To       civiltime.Date
	Windows  []domain.AvailabilityWindow
	Bookings []domain.Booking
	Blocks   []domain.ScheduleBlock
}

// Days возвращает все даты диапазона по порядку
func (p *Plan) Days() []civiltime.Date {
	if p.To.Before(p.From) {
		return nil
	}
	days := make([]civiltime.Date, 0, p.From.DaysUntil(p.To)+1)
	for d := p.From; !d.After(p.To); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

// DayWindows окна одного дня
func (p *Plan) DayWindows(day civiltime.Date) []domain.AvailabilityWindow {
	return domain.WindowsForDay(p.Windows, day)
}

// DayBookings бронирования, начинающиеся в указанный день
func (p *Plan) DayBookings(day civiltime.Date) []domain.Booking {
	var out []domain.Booking
	for _, b := range p.Bookings {
		if !b.Start.IsZero() && civiltime.DateOf(b.Start) == day {
			out = append(out, b)
		}
	}
	return out
}

// DayBlocks блокировки, начинающиеся в указанный день
func (p *Plan) DayBlocks(day civiltime.Date) []domain.ScheduleBlock {
	var out []domain.ScheduleBlock
	for _, b := range p.Blocks {
		if !b.Start.IsZero() && civiltime.DateOf(b.Start) == day {
			out = append(out, b)
		}
	}
	return out
}

// TimelineItems бронирования и блокировки дня, упорядоченные по началу
func (p *Plan) TimelineItems(day civiltime.Date) []domain.TimelineItem {
	var items []domain.TimelineItem
	for _, b := range p.DayBookings(day) {
		items = append(items, b.TimelineItem())
	}
	for _, b := range p.DayBlocks(day) {
		items = append(items, b.TimelineItem())
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Start.Before(items[j].Start)
	})
	return items
}
