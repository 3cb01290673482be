package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// ErrInvalidTimeRange is returned for malformed "HH:MM-HH:MM" ranges.
var ErrInvalidTimeRange = errors.New("domain: invalid time range, expected HH:MM-HH:MM")

// AvailabilityWindow is a span of civil time on a given day during which the
// business accepts bookings. Start and End are wall-clock times of Day.
type AvailabilityWindow struct {
	Day   civiltime.Date
	Start types.TimeString
	End   types.TimeString
}

// Minutes returns the window length, or zero for degenerate windows.
func (w AvailabilityWindow) Minutes() int {
	if !w.Start.IsBefore(w.End) {
		return 0
	}
	return w.Start.MinutesUntil(w.End)
}

// Bounds converts the window into instants. ok is false when either edge
// does not exist in civil time.
func (w AvailabilityWindow) Bounds() (start, end time.Time, ok bool) {
	start, ok = civiltime.FromCivil(w.Day.At(w.Start.Hour(), w.Start.Minute(), 0))
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	if w.End.Hour() == 24 {
		end, ok = civiltime.FromCivil(w.Day.AddDays(1).At(0, 0, 0))
	} else {
		end, ok = civiltime.FromCivil(w.Day.At(w.End.Hour(), w.End.Minute(), 0))
	}
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// WindowsForDay selects the windows of one day.
func WindowsForDay(windows []AvailabilityWindow, day civiltime.Date) []AvailabilityWindow {
	var out []AvailabilityWindow
	for _, w := range windows {
		if w.Day == day {
			out = append(out, w)
		}
	}
	return out
}

// BlockKind classifies non-bookable schedule blocks
type BlockKind string

const (
	BlockKindBreak       BlockKind = "break"
	BlockKindMaintenance BlockKind = "maintenance"
	BlockKindHoliday     BlockKind = "holiday"
)

// ScheduleBlock is a non-bookable period (lunch break, maintenance) shown on the timeline.
type ScheduleBlock struct {
	ID    int64
	Kind  BlockKind
	Title string
	Start time.Time
	End   time.Time
	// RuleID is set for blocks produced by a recurring rule
	RuleID string
}

// TimelineItem converts the block into a timeline entry.
func (b *ScheduleBlock) TimelineItem() TimelineItem {
	id := "block-" + strconv.FormatInt(b.ID, 10)
	if b.RuleID != "" {
		id = "rule-" + b.RuleID + "-" + b.Start.UTC().Format("20060102T150405Z")
	}
	return TimelineItem{
		ID:    id,
		Kind:  ItemKindBlock,
		Title: b.Title,
		Start: b.Start,
		End:   b.End,
	}
}

// DayOverride replaces the weekly plan for a single civil date.
// Closed == true means no windows at all; otherwise Windows replaces the plan.
type DayOverride struct {
	Date    civiltime.Date
	Closed  bool
	Windows []TimeRange
	Reason  string
}

// TimeRange is a wall-clock interval without a date.
type TimeRange struct {
	Start types.TimeString
	End   types.TimeString
}

// RecurringBreak is a recurring non-bookable period described by an RRULE.
// Occurrences start at wall time Start on the days the rule yields, counted
// from Since, so a break stays at the same wall time across DST changes.
type RecurringBreak struct {
	ID              string
	Title           string
	Rule            string
	Since           civiltime.Date
	Start           types.TimeString
	DurationMinutes int
}

// ParseTimeRange parses "HH:MM-HH:MM".
func ParseTimeRange(s string) (TimeRange, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 2 {
		return TimeRange{}, fmt.Errorf("%w: %q", ErrInvalidTimeRange, s)
	}
	start, err := types.NewTimeStringFromString(parts[0])
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: %q: %v", ErrInvalidTimeRange, s, err)
	}
	end, err := types.NewTimeStringFromString(parts[1])
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: %q: %v", ErrInvalidTimeRange, s, err)
	}
	if !start.IsBefore(end) {
		return TimeRange{}, fmt.Errorf("%w: %q: start must be before end", ErrInvalidTimeRange, s)
	}
	return TimeRange{Start: start, End: end}, nil
}

func (r TimeRange) String() string {
	return r.Start.String() + "-" + r.End.String()
}
