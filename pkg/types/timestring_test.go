package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("parses HH:MM", func(t *testing.T) {
		ts, err := NewTimeStringFromString("09:30")
		require.NoError(t, err)
		assert.Equal(t, 9, ts.Hour())
		assert.Equal(t, 30, ts.Minute())
		assert.Equal(t, "09:30", ts.String())
	})

	t.Run("accepts single digit hour and dot separator", func(t *testing.T) {
		ts, err := NewTimeStringFromString(" 7.05 ")
		require.NoError(t, err)
		assert.Equal(t, "07:05", ts.String())
	})

	t.Run("accepts end of day", func(t *testing.T) {
		ts, err := NewTimeStringFromString("24:00")
		require.NoError(t, err)
		assert.Equal(t, 24*60, ts.Minutes())
	})

	for _, bad := range []string{"", "9", "25:00", "24:01", "10:60", "10:5", "aa:bb", "-1:00"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			_, err := NewTimeStringFromString(bad)
			assert.ErrorIs(t, err, ErrInvalidTimeString)
		})
	}
}

func TestTimeString_Arithmetic(t *testing.T) {
	start := MustTimeString("13:00")

	end, err := start.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, "14:30", end.String())
	assert.True(t, start.IsBefore(end))
	assert.True(t, end.IsAfter(start))
	assert.Equal(t, 90, start.MinutesUntil(end))
	assert.InDelta(t, 14.5, end.FractionalHours(), 1e-9)

	_, err = start.AddMinutes(12 * 60)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("17:45:00"))
	assert.Equal(t, "17:45", ts.String())

	require.NoError(t, ts.Scan([]byte("08:15")))
	assert.Equal(t, "08:15", ts.String())

	require.NoError(t, ts.Scan(time.Date(2000, 1, 1, 6, 5, 0, 0, time.UTC)))
	assert.Equal(t, "06:05", ts.String())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_UnmarshalText(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.UnmarshalText([]byte("11:20")))
	assert.Equal(t, 11*60+20, ts.Minutes())

	out, err := ts.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "11:20", string(out))
}
