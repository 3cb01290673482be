// Package workingday builds the small window of working days around a target
// date used to query an external availability source, and groups the slots
// that come back by civil day.
package workingday

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

const (
	// NeighbourDays is the number of non-excluded days collected on each side of the target.
	NeighbourDays = 2
	// MaxScanDays caps the scan in each direction.
	MaxScanDays = 10
)

// ErrExhaustedSearch is reported through Window.Warning when the scan cap is
// reached before enough non-excluded days were found.
var ErrExhaustedSearch = errors.New("workingday: not enough working days within scan limit")

// Window is the resolved range of civil days.
type Window struct {
	Target civiltime.Date
	// Days are in chronological order and always contain Target.
	Days       []civiltime.Date
	RangeStart time.Time
	RangeEnd   time.Time
	// Warning is non-nil when the window is partial.
	Warning error
}

// First returns the earliest day.
func (w Window) First() civiltime.Date {
	return w.Days[0]
}

// Last returns the latest day.
func (w Window) Last() civiltime.Date {
	return w.Days[len(w.Days)-1]
}

// Key is a canonical string for memoizing results of the same window.
func (w Window) Key() string {
	return w.First().Key() + "_" + w.Last().Key()
}

// Contains reports whether d is one of the window days.
func (w Window) Contains(d civiltime.Date) bool {
	for _, day := range w.Days {
		if day == d {
			return true
		}
	}
	return false
}

// Resolve collects up to NeighbourDays non-excluded days before and after
// target, scanning at most MaxScanDays in each direction. Target itself is
// always included, even when its weekday is excluded.
func Resolve(target civiltime.Date, excluded ...time.Weekday) Window {
	skip := make(map[time.Weekday]bool, len(excluded))
	for _, wd := range excluded {
		skip[wd] = true
	}

	backward := collect(target, -1, skip)
	forward := collect(target, 1, skip)

	days := make([]civiltime.Date, 0, len(backward)+1+len(forward))
	for i := len(backward) - 1; i >= 0; i-- {
		days = append(days, backward[i])
	}
	days = append(days, target)
	days = append(days, forward...)

	w := Window{Target: target, Days: days}
	if len(backward) < NeighbourDays || len(forward) < NeighbourDays {
		w.Warning = fmt.Errorf("%w: found %d before and %d after %s", ErrExhaustedSearch, len(backward), len(forward), target.Key())
	}

	// начало первого дня и конец последнего в гражданском времени
	w.RangeStart, _ = w.First().StartInstant()
	w.RangeEnd, _ = w.Last().EndInstant()

	return w
}

// ResolveInstant resolves the window around the civil date of instant t.
func ResolveInstant(t time.Time, excluded ...time.Weekday) Window {
	return Resolve(civiltime.DateOf(t), excluded...)
}

func collect(target civiltime.Date, step int, skip map[time.Weekday]bool) []civiltime.Date {
	found := make([]civiltime.Date, 0, NeighbourDays)
	for i := 1; i <= MaxScanDays && len(found) < NeighbourDays; i++ {
		d := target.AddDays(i * step)
		if skip[d.Weekday()] {
			continue
		}
		found = append(found, d)
	}
	return found
}
