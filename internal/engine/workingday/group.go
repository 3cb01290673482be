package workingday

import (
	"sort"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
)

// DaySlots is the list of slots starting on one civil day.
type DaySlots struct {
	Day   civiltime.Date
	Slots []domain.AvailableSlot
}

// GroupByDay buckets slots by the civil date of their start. Days are sorted
// by key, slots within a day by start then end. Slots without a start are
// dropped. Regrouping the flattened output yields the same result.
func GroupByDay(slots []domain.AvailableSlot) []DaySlots {
	byKey := make(map[string]*DaySlots)
	for _, s := range slots {
		if s.Start.IsZero() {
			continue
		}
		d := s.Day()
		bucket, ok := byKey[d.Key()]
		if !ok {
			bucket = &DaySlots{Day: d}
			byKey[d.Key()] = bucket
		}
		bucket.Slots = append(bucket.Slots, s)
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]DaySlots, 0, len(keys))
	for _, k := range keys {
		bucket := byKey[k]
		sort.SliceStable(bucket.Slots, func(i, j int) bool {
			a, b := bucket.Slots[i], bucket.Slots[j]
			if !a.Start.Equal(b.Start) {
				return a.Start.Before(b.Start)
			}
			return a.End.Before(b.End)
		})
		out = append(out, *bucket)
	}
	return out
}

// Flatten concatenates grouped slots back into a single list.
func Flatten(groups []DaySlots) []domain.AvailableSlot {
	var out []domain.AvailableSlot
	for _, g := range groups {
		out = append(out, g.Slots...)
	}
	return out
}
