// Package timeline positions bookings and schedule blocks on a vertical day
// view as percentages of the visible working span.
package timeline

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

// Position is the placement of one item.
type Position struct {
	Item          domain.TimelineItem
	WindowIndex   int
	TopPercent    float64
	HeightPercent float64
}

// Result is the layout of one day.
type Result struct {
	// EarliestStart and LatestEnd are fractional civil hours of the visible span.
	EarliestStart float64
	LatestEnd     float64
	Positions     []Position
	// Omitted holds ids of items that fit no window.
	Omitted []string
}

// Span returns LatestEnd - EarliestStart in hours.
func (r Result) Span() float64 {
	return r.LatestEnd - r.EarliestStart
}

type hourRange struct {
	day   civiltime.Date
	start float64
	end   float64
}

// Layout computes positions for items against the windows of a single day.
//
// The visible span runs from the earliest window start to the latest window
// end. Each item is assigned to the first window that fully contains it,
// otherwise to the first window containing its start. Items that match no
// window, or lack valid instants, are omitted. A non-positive span positions
// nothing. Positions keep the input order of items.
func Layout(windows []domain.AvailabilityWindow, items []domain.TimelineItem) Result {
	var res Result
	if len(windows) == 0 {
		for _, it := range items {
			res.Omitted = append(res.Omitted, it.ID)
		}
		return res
	}

	ranges := make([]hourRange, len(windows))
	for i, w := range windows {
		ranges[i] = hourRange{day: w.Day, start: w.Start.FractionalHours(), end: w.End.FractionalHours()}
		if i == 0 || ranges[i].start < res.EarliestStart {
			res.EarliestStart = ranges[i].start
		}
		if i == 0 || ranges[i].end > res.LatestEnd {
			res.LatestEnd = ranges[i].end
		}
	}

	span := res.Span()
	if span <= 0 {
		for _, it := range items {
			res.Omitted = append(res.Omitted, it.ID)
		}
		return res
	}

	for _, it := range items {
		day, start, end, ok := itemHours(it)
		if !ok {
			res.Omitted = append(res.Omitted, it.ID)
			continue
		}

		idx := containing(ranges, day, start, end)
		if idx < 0 {
			res.Omitted = append(res.Omitted, it.ID)
			continue
		}

		res.Positions = append(res.Positions, Position{
			Item:          it,
			WindowIndex:   idx,
			TopPercent:    (start - res.EarliestStart) / span * 100,
			HeightPercent: (end - start) / span * 100,
		})
	}

	return res
}

// itemHours returns the civil start date and fractional hours of an item.
// An end on a later civil date is expressed past 24.
func itemHours(it domain.TimelineItem) (civiltime.Date, float64, float64, bool) {
	if it.Start.IsZero() || it.End.IsZero() || it.End.Before(it.Start) {
		return civiltime.Date{}, 0, 0, false
	}
	day := civiltime.DateOf(it.Start)
	start := civiltime.FractionalHour(it.Start)
	end := civiltime.FractionalHour(it.End) + 24*float64(day.DaysUntil(civiltime.DateOf(it.End)))
	return day, start, end, true
}

func containing(ranges []hourRange, day civiltime.Date, start, end float64) int {
	for i, r := range ranges {
		if r.day == day && start >= r.start && end <= r.end {
			return i
		}
	}
	for i, r := range ranges {
		if r.day == day && start >= r.start && start < r.end {
			return i
		}
	}
	return -1
}
