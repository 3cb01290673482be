package domain

import (
	"strconv"
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending            BookingStatus = "pending"
	StatusConfirmed          BookingStatus = "confirmed"
	StatusInProgress         BookingStatus = "in_progress"
	StatusCompleted          BookingStatus = "completed"
	StatusCancelledByUser    BookingStatus = "cancelled_by_user"
	StatusCancelledByCompany BookingStatus = "cancelled_by_company"
	StatusNoShow             BookingStatus = "no_show"
)

// Booking is an existing appointment occupying part of an availability window.
// Start and End are absolute instants (UTC). A zero instant means the value
// was absent or unparseable at the source.
type Booking struct {
	ID           int64
	UserID       int64
	CustomerName string
	ServiceName  string
	Start        time.Time
	End          time.Time
	Status       BookingStatus
	Notes        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking is in an active state
func (b *Booking) IsActive() bool {
	for _, s := range InactiveStatuses {
		if b.Status == s {
			return false
		}
	}
	return true
}

// CanBeRescheduled returns true if the booking may be moved to another slot
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// HasTimes reports whether both instants are present and ordered.
func (b *Booking) HasTimes() bool {
	return !b.Start.IsZero() && !b.End.IsZero() && !b.End.Before(b.Start)
}

// Duration returns End - Start, or zero for bookings without valid times.
func (b *Booking) Duration() time.Duration {
	if !b.HasTimes() {
		return 0
	}
	return b.End.Sub(b.Start)
}

// TimelineItem converts the booking into a timeline entry.
func (b *Booking) TimelineItem() TimelineItem {
	title := b.ServiceName
	if b.CustomerName != "" {
		title = b.CustomerName + " - " + b.ServiceName
	}
	return TimelineItem{
		ID:     "booking-" + strconv.FormatInt(b.ID, 10),
		Kind:   ItemKindBooking,
		Title:  title,
		Start:  b.Start,
		End:    b.End,
		Status: string(b.Status),
	}
}

// ActiveOnly filters out cancelled and no-show bookings.
func ActiveOnly(bookings []Booking) []Booking {
	active := make([]Booking, 0, len(bookings))
	for i := range bookings {
		if bookings[i].IsActive() {
			active = append(active, bookings[i])
		}
	}
	return active
}
