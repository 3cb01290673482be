// Package civiltime converts between absolute instants and the civil
// (wall-clock) time of the business timezone, US Eastern.
//
// The daylight saving rules are evaluated arithmetically and do not depend on
// the host tz database:
//   - standard time is UTC-05:00, daylight time is UTC-04:00;
//   - daylight time begins on the second Sunday of March at 07:00 UTC;
//   - daylight time ends on the first Sunday of November at 06:00 UTC.
//
// Conversions never panic. Malformed input yields the Invalid sentinel.
package civiltime

import (
	"fmt"
	"time"
)

// Timezone is the IANA name reported to external availability providers.
const Timezone = "America/New_York"

// UTCOffset is a civil offset from UTC, in seconds east of Greenwich.
// The zero value means the offset is unknown.
type UTCOffset int

const (
	Standard UTCOffset = -5 * 3600
	Daylight UTCOffset = -4 * 3600
)

const (
	daylightStartHourUTC = 7
	daylightEndHourUTC   = 6
)

var (
	standardZone = time.FixedZone("EST", int(Standard))
	daylightZone = time.FixedZone("EDT", int(Daylight))
)

// Duration returns the offset as a time.Duration.
func (o UTCOffset) Duration() time.Duration {
	return time.Duration(o) * time.Second
}

// Known reports whether the offset is one of the two offsets of the zone.
func (o UTCOffset) Known() bool {
	return o == Standard || o == Daylight
}

// Location returns a fixed zone for the offset.
func (o UTCOffset) Location() *time.Location {
	if o == Daylight {
		return daylightZone
	}
	return standardZone
}

// String formats the offset as "-05:00".
func (o UTCOffset) String() string {
	sign := '+'
	secs := int(o)
	if secs < 0 {
		sign = '-'
		secs = -secs
	}
	return fmt.Sprintf("%c%02d:%02d", sign, secs/3600, (secs%3600)/60)
}

// CivilDateTime is a wall-clock reading in the business timezone.
//
// Month is 1-based (time.Month). The zero value is Invalid.
type CivilDateTime struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
	Offset UTCOffset
}

// Invalid is the sentinel returned for malformed input.
var Invalid = CivilDateTime{}

// Valid reports whether all wall fields are in range.
func (c CivilDateTime) Valid() bool {
	if c.Year < 1 || c.Month < time.January || c.Month > time.December {
		return false
	}
	if c.Day < 1 || c.Day > daysIn(c.Year, c.Month) {
		return false
	}
	return c.Hour >= 0 && c.Hour < 24 &&
		c.Minute >= 0 && c.Minute < 60 &&
		c.Second >= 0 && c.Second < 60
}

// Date returns the calendar date part.
func (c CivilDateTime) Date() Date {
	return Date{Year: c.Year, Month: c.Month, Day: c.Day}
}

// Time returns the reading as a time.Time in a fixed zone matching Offset.
// The result is zero for invalid readings or unknown offsets.
func (c CivilDateTime) Time() time.Time {
	if !c.Valid() || !c.Offset.Known() {
		return time.Time{}
	}
	return time.Date(c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second, 0, c.Offset.Location())
}

// String formats the reading as RFC 3339, or "invalid".
func (c CivilDateTime) String() string {
	if !c.Valid() {
		return "invalid"
	}
	s := fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d", c.Year, int(c.Month), c.Day, c.Hour, c.Minute, c.Second)
	if c.Offset.Known() {
		s += c.Offset.String()
	}
	return s
}

func (c CivilDateTime) sameWall(o CivilDateTime) bool {
	return c.Year == o.Year && c.Month == o.Month && c.Day == o.Day &&
		c.Hour == o.Hour && c.Minute == o.Minute && c.Second == o.Second
}

// wallAsUTC interprets the wall fields as if they were UTC.
func (c CivilDateTime) wallAsUTC() time.Time {
	return time.Date(c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second, 0, time.UTC)
}

// firstSunday returns the day of month of the first Sunday.
func firstSunday(year int, month time.Month) int {
	wd := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
	if wd == time.Sunday {
		return 1
	}
	return 8 - int(wd)
}

// SecondSundayOfMarch returns the day of month daylight time begins.
func SecondSundayOfMarch(year int) int {
	return firstSunday(year, time.March) + 7
}

// FirstSundayOfNovember returns the day of month daylight time ends.
func FirstSundayOfNovember(year int) int {
	return firstSunday(year, time.November)
}

// DaylightStart is the instant daylight time begins in year.
func DaylightStart(year int) time.Time {
	return time.Date(year, time.March, SecondSundayOfMarch(year), daylightStartHourUTC, 0, 0, 0, time.UTC)
}

// DaylightEnd is the instant daylight time ends in year.
func DaylightEnd(year int) time.Time {
	return time.Date(year, time.November, FirstSundayOfNovember(year), daylightEndHourUTC, 0, 0, 0, time.UTC)
}

// OffsetAt returns the offset in effect at instant t.
func OffsetAt(t time.Time) UTCOffset {
	u := t.UTC()
	switch m := u.Month(); {
	case m > time.March && m < time.November:
		return Daylight
	case m == time.March:
		if !u.Before(DaylightStart(u.Year())) {
			return Daylight
		}
	case m == time.November:
		if u.Before(DaylightEnd(u.Year())) {
			return Daylight
		}
	}
	return Standard
}

// IsDaylightSaving reports whether a civil hour falls under daylight time.
//
// Months April through October are always daylight, December through
// February never are. In March the wall hour is read as standard time and
// compared to the start instant. In November it is read as daylight time and
// compared to the end instant, so the repeated hour resolves to its first,
// daylight, occurrence.
func IsDaylightSaving(year int, month time.Month, day, hour int) bool {
	switch {
	case month > time.March && month < time.November:
		return true
	case month == time.March:
		wall := time.Date(year, month, day, hour, 0, 0, 0, time.UTC).Add(-Standard.Duration())
		return !wall.Before(DaylightStart(year))
	case month == time.November:
		wall := time.Date(year, month, day, hour, 0, 0, 0, time.UTC).Add(-Daylight.Duration())
		return wall.Before(DaylightEnd(year))
	default:
		return false
	}
}

// ToCivil converts an instant to the civil reading in effect at that instant.
// A zero instant is treated as absent and yields Invalid.
func ToCivil(t time.Time) CivilDateTime {
	if t.IsZero() {
		return Invalid
	}
	off := OffsetAt(t)
	local := t.UTC().Add(off.Duration())
	return CivilDateTime{
		Year:   local.Year(),
		Month:  local.Month(),
		Day:    local.Day(),
		Hour:   local.Hour(),
		Minute: local.Minute(),
		Second: local.Second(),
		Offset: off,
	}
}

// FromCivil converts a civil reading to an instant.
//
// The offset is re-derived from the wall fields. When c carries a known
// offset that is also legal for the reading (the repeated November hour),
// that offset wins, so ToCivil and FromCivil round-trip. Readings inside the
// spring-forward gap do not exist and return ok == false, as do invalid
// readings.
func FromCivil(c CivilDateTime) (t time.Time, ok bool) {
	if !c.Valid() {
		return time.Time{}, false
	}

	off := Standard
	if IsDaylightSaving(c.Year, c.Month, c.Day, c.Hour) {
		off = Daylight
	}

	if c.Offset.Known() && c.Offset != off {
		if candidate, ok := resolve(c, c.Offset); ok {
			return candidate, true
		}
	}

	return resolve(c, off)
}

func resolve(c CivilDateTime, off UTCOffset) (time.Time, bool) {
	instant := c.wallAsUTC().Add(-off.Duration())
	back := ToCivil(instant)
	if !back.sameWall(c) || back.Offset != off {
		return time.Time{}, false
	}
	return instant, true
}

// FractionalHour returns the civil hour of t as hour + minute/60.
func FractionalHour(t time.Time) float64 {
	c := ToCivil(t)
	return float64(c.Hour) + float64(c.Minute)/60
}

// In returns t in a fixed zone matching the civil offset at t.
func In(t time.Time) time.Time {
	return t.In(OffsetAt(t).Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
