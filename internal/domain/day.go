package domain

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

// DayStatus is the booking-load classification of a calendar day
type DayStatus string

const (
	DayStatusOpen    DayStatus = "open"
	DayStatusPartial DayStatus = "partial"
	DayStatusClosed  DayStatus = "closed"
)

// ItemKind distinguishes timeline entries
type ItemKind string

const (
	ItemKindBooking ItemKind = "booking"
	ItemKindBlock   ItemKind = "block"
)

// TimelineItem is anything with a start and end drawn on the day timeline.
type TimelineItem struct {
	ID     string
	Kind   ItemKind
	Title  string
	Start  time.Time
	End    time.Time
	Status string
}

// AvailableSlot is a free interval reported by the external availability source.
type AvailableSlot struct {
	Start time.Time
	End   time.Time
}

// Day returns the civil date the slot starts on.
func (s AvailableSlot) Day() civiltime.Date {
	return civiltime.DateOf(s.Start)
}

// IsPast reports whether the slot starts before now.
func (s AvailableSlot) IsPast(now time.Time) bool {
	return s.Start.Before(now)
}
