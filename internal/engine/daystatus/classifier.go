// Package daystatus classifies a civil day as open, partially booked or closed
// from its availability windows and the bookings starting on it.
package daystatus

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

// ClosedThresholdPercent is the booked share of available time at which a
// day counts as closed. The comparison is inclusive.
const ClosedThresholdPercent = 90

// ClosedThreshold is ClosedThresholdPercent as a ratio.
const ClosedThreshold = float64(ClosedThresholdPercent) / 100

// Summary holds the inputs of the classification for one day.
type Summary struct {
	Day              civiltime.Date
	Status           domain.DayStatus
	WindowCount      int
	BookingCount     int
	AvailableMinutes float64
	BookedMinutes    float64
}

// Utilization returns booked / available, or zero when nothing is available.
func (s Summary) Utilization() float64 {
	if s.AvailableMinutes <= 0 {
		return 0
	}
	return s.BookedMinutes / s.AvailableMinutes
}

// Classify returns the status of day.
func Classify(windows []domain.AvailabilityWindow, bookings []domain.Booking, day civiltime.Date) domain.DayStatus {
	return Summarize(windows, bookings, day).Status
}

// Summarize classifies day and reports the minute totals used.
//
// Only windows whose Day equals day and bookings whose start falls on day
// (civil date) are considered. Bookings with missing or inverted instants
// count as zero minutes. Cancelled bookings are expected to be filtered out
// by the caller.
func Summarize(windows []domain.AvailabilityWindow, bookings []domain.Booking, day civiltime.Date) Summary {
	s := Summary{Day: day}

	var availableSeconds int64
	for _, w := range windows {
		if w.Day != day {
			continue
		}
		s.WindowCount++
		availableSeconds += int64(w.Minutes()) * 60
	}

	if s.WindowCount == 0 {
		s.Status = domain.DayStatusClosed
		return s
	}
	s.AvailableMinutes = float64(availableSeconds) / 60

	var bookedSeconds int64
	for i := range bookings {
		b := &bookings[i]
		if b.Start.IsZero() || civiltime.DateOf(b.Start) != day {
			continue
		}
		s.BookingCount++
		bookedSeconds += int64(b.Duration() / time.Second)
	}

	if s.BookingCount == 0 {
		s.Status = domain.DayStatusOpen
		return s
	}
	s.BookedMinutes = float64(bookedSeconds) / 60

	// целочисленное сравнение, чтобы граница 90% не зависела от округления float
	if bookedSeconds*100 >= availableSeconds*ClosedThresholdPercent {
		s.Status = domain.DayStatusClosed
	} else {
		s.Status = domain.DayStatusPartial
	}
	return s
}
