package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeString возвращается, когда строка не соответствует формату HH:MM
var ErrInvalidTimeString = errors.New("types: invalid time string, expected HH:MM")

// ErrTimeOverflow возвращается, когда результат арифметики выходит за пределы суток
var ErrTimeOverflow = errors.New("types: time is out of day bounds")

const minutesPerDay = 24 * 60

// TimeString wall-clock время в формате "HH:MM" без привязки к дате и таймзоне.
// Допустимы значения от 00:00 до 24:00 включительно (24:00 - конец суток).
type TimeString struct {
	minutes int
}

// NewTimeStringFromString парсит строку "HH:MM" (допускается "H:MM" и "HH.MM")
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ".", ":")
	parts := strings.Split(s, ":")
	if len(parts) != 2 || parts[0] == "" || len(parts[1]) != 2 {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	if h < 0 || m < 0 || m > 59 || h > 24 || (h == 24 && m != 0) {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	return TimeString{minutes: h*60 + m}, nil
}

// MustTimeString паникует на некорректной строке, используется для констант и тестов
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// NewTimeString берёт часы и минуты из wall-clock полей t
func NewTimeString(t time.Time) TimeString {
	return TimeString{minutes: t.Hour()*60 + t.Minute()}
}

// NewTimeStringFromMinutes создаёт время из количества минут от начала суток
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes > minutesPerDay {
		return TimeString{}, ErrTimeOverflow
	}
	return TimeString{minutes: minutes}, nil
}

// AddMinutes возвращает время, сдвинутое на n минут. Выход за пределы суток - ошибка.
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	return NewTimeStringFromMinutes(t.minutes + n)
}

// IsBefore строго раньше
func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutes < other.minutes
}

// IsAfter строго позже
func (t TimeString) IsAfter(other TimeString) bool {
	return t.minutes > other.minutes
}

// Equal совпадает ли время
func (t TimeString) Equal(other TimeString) bool {
	return t.minutes == other.minutes
}

// Hour часы
func (t TimeString) Hour() int {
	return t.minutes / 60
}

// Minute минуты внутри часа
func (t TimeString) Minute() int {
	return t.minutes % 60
}

// Minutes количество минут от начала суток
func (t TimeString) Minutes() int {
	return t.minutes
}

// FractionalHours часы с дробной частью: hour + minute/60
func (t TimeString) FractionalHours() float64 {
	return float64(t.Hour()) + float64(t.Minute())/60
}

// MinutesUntil разница в минутах до other (может быть отрицательной)
func (t TimeString) MinutesUntil(other TimeString) int {
	return other.minutes - t.minutes
}

// String форматирует время как "HH:MM"
func (t TimeString) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// MarshalText реализует encoding.TextMarshaler (используется в JSON и TOML)
func (t TimeString) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText реализует encoding.TextUnmarshaler
func (t *TimeString) UnmarshalText(data []byte) error {
	parsed, err := NewTimeStringFromString(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Scan реализует sql.Scanner для колонок типа TIME / TEXT
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case nil:
		*t = TimeString{}
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}
}

func (t *TimeString) scanString(s string) error {
	// Postgres отдаёт TIME как "HH:MM:SS"
	if len(s) == len("15:04:05") && strings.Count(s, ":") == 2 {
		s = s[:5]
	}
	return t.UnmarshalText([]byte(s))
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	return t.String(), nil
}
