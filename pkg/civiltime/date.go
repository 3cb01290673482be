package civiltime

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the canonical "YYYY-MM-DD" key format.
const DateLayout = "2006-01-02"

// offsetLayouts are ISO 8601 forms time.RFC3339 does not accept.
var offsetLayouts = []string{
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05.999999999-0700",
	"2006-01-02T15:04-07:00",
}

var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Date is a civil calendar date in the business timezone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a date, normalizing overflowing fields the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// DateOf returns the civil date of instant t.
func DateOf(t time.Time) Date {
	return ToCivil(t).Date()
}

// ParseDate parses a "YYYY-MM-DD" key.
func ParseDate(s string) (Date, bool) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, false
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, true
}

// ParseInstant parses an instant.
//
// Strings carrying an offset or "Z" are absolute. Strings without one are
// read as civil time in the business timezone. Unparseable strings and
// nonexistent civil times return ok == false.
func ParseInstant(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), true
	}

	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}

	for _, layout := range naiveLayouts {
		w, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return FromCivil(CivilDateTime{
			Year:   w.Year(),
			Month:  w.Month(),
			Day:    w.Day(),
			Hour:   w.Hour(),
			Minute: w.Minute(),
			Second: w.Second(),
		})
	}

	return time.Time{}, false
}

// IsZero reports whether d is the zero date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Valid reports whether d names a real calendar day.
func (d Date) Valid() bool {
	return d.At(0, 0, 0).Valid()
}

// At returns the civil reading at the given wall time on d.
func (d Date) At(hour, minute, second int) CivilDateTime {
	return CivilDateTime{Year: d.Year, Month: d.Month, Day: d.Day, Hour: hour, Minute: minute, Second: second}
}

// AddDays returns d shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	return NewDate(d.Year, d.Month, d.Day+n)
}

// Weekday returns the day of week of d.
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

// Key returns the canonical "YYYY-MM-DD" string.
func (d Date) Key() string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format(DateLayout)
}

func (d Date) String() string {
	return d.Key()
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool {
	return d.Compare(o) > 0
}

// Compare returns -1, 0 or +1.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(int(d.Month) - int(o.Month))
	default:
		return sign(d.Day - o.Day)
	}
}

// DaysUntil returns the number of calendar days from d to o.
func (d Date) DaysUntil(o Date) int {
	a := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	b := time.Date(o.Year, o.Month, o.Day, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// StartInstant is d at 00:00:00 civil time.
func (d Date) StartInstant() (time.Time, bool) {
	return FromCivil(d.At(0, 0, 0))
}

// EndInstant is d at 23:59:59 civil time.
func (d Date) EndInstant() (time.Time, bool) {
	return FromCivil(d.At(23, 59, 59))
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.Key()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, ok := ParseDate(string(b))
	if !ok {
		return fmt.Errorf("civiltime: invalid date %q", string(b))
	}
	*d = parsed
	return nil
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
