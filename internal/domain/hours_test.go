package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ivonestudio/studio-service/pkg/types"
)

func workingHours() BusinessHours {
	return BusinessHours{
		Days:       []string{"Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"},
		Start:      "09:00",
		End:        "18:00",
		BreakStart: "12:00",
		BreakEnd:   "13:00",
	}
}

func TestBusinessHours_AllowsDate(t *testing.T) {
	hours := workingHours()

	// 2025-03-11 — вторник, 2025-03-09 — воскресенье
	assert.True(t, hours.AllowsDate("2025-03-11"))
	assert.False(t, hours.AllowsDate("2025-03-09"))
	assert.False(t, hours.AllowsDate("11/03/2025"))
	assert.False(t, hours.AllowsDate(""))
}

func TestBusinessHours_AllowsWeekday(t *testing.T) {
	hours := workingHours()

	assert.True(t, hours.AllowsWeekday(time.Saturday))
	assert.False(t, hours.AllowsWeekday(time.Sunday))

	hours.Days = []string{"Dom"}
	assert.True(t, hours.AllowsWeekday(time.Sunday))
	assert.False(t, hours.AllowsWeekday(time.Monday))
}

func TestBusinessHours_Slots(t *testing.T) {
	slots := workingHours().Slots()

	contains := func(want string) bool {
		for _, s := range slots {
			if s.String() == want {
				return true
			}
		}
		return false
	}

	assert.True(t, contains("09:00"))
	assert.True(t, contains("11:30"))
	assert.True(t, contains("13:00"))
	assert.True(t, contains("17:30"))

	// перерыв и граница закрытия исключены
	assert.False(t, contains("12:00"))
	assert.False(t, contains("12:30"))
	assert.False(t, contains("18:00"))

	// сетка строго возрастает
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].IsBefore(slots[i]))
	}
}

func TestBusinessHours_Slots_NoBreak(t *testing.T) {
	hours := workingHours()
	hours.BreakStart = ""
	hours.BreakEnd = ""

	slots := hours.Slots()
	assert.Len(t, slots, 18) // 09:00..17:30 c шагом 30 минут
}

func TestBusinessHours_Slots_MalformedConfig(t *testing.T) {
	cases := []BusinessHours{
		{Start: "18:00", End: "09:00"},
		{Start: "nine", End: "18:00"},
		{Start: "09:00", End: ""},
		{},
	}

	for _, hours := range cases {
		assert.Equal(t, DefaultSlotLadder, hours.Slots(), "hours %+v", hours)
	}
}

func TestBusinessHours_ContainsSlot(t *testing.T) {
	hours := workingHours()

	assert.True(t, hours.ContainsSlot(types.TimeString("10:30")))
	assert.False(t, hours.ContainsSlot(types.TimeString("10:15")))
	assert.False(t, hours.ContainsSlot(types.TimeString("12:00")))
}
