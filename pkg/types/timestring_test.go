package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		ts, err := NewTimeStringFromString("09:30")
		require.NoError(t, err)
		assert.Equal(t, "09:30", ts.String())
	})

	t.Run("invalid format", func(t *testing.T) {
		for _, s := range []string{"", "9:30", "24:00", "09:60", "morning"} {
			_, err := NewTimeStringFromString(s)
			assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", s)
		}
	})
}

func TestTimeString_Minutes(t *testing.T) {
	ts, err := NewTimeStringFromString("13:45")
	require.NoError(t, err)

	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 13*60+45, minutes)
}

func TestTimeString_AddMinutes(t *testing.T) {
	t.Run("within day", func(t *testing.T) {
		ts, _ := NewTimeStringFromString("11:30")
		next, err := ts.AddMinutes(30)
		require.NoError(t, err)
		assert.Equal(t, "12:00", next.String())
	})

	t.Run("past midnight", func(t *testing.T) {
		ts, _ := NewTimeStringFromString("23:45")
		_, err := ts.AddMinutes(30)
		assert.Error(t, err)
	})
}

func TestTimeString_Ordering(t *testing.T) {
	a, _ := NewTimeStringFromString("09:00")
	b, _ := NewTimeStringFromString("17:30")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
}
