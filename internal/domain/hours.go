package domain

import (
	"time"

	"github.com/ivonestudio/studio-service/pkg/types"
)

// BusinessHours рабочие часы салона. Времена — настенные строки "HH:MM",
// дни — португальские аббревиатуры дней недели.
type BusinessHours struct {
	Days       []string `json:"days"` // Dom, Seg, Ter, Qua, Qui, Sex, Sáb
	Start      string   `json:"start"`
	End        string   `json:"end"`
	BreakStart string   `json:"breakStart"`
	BreakEnd   string   `json:"breakEnd"`
}

// weekdayNames сопоставление аббревиатур дням недели
var weekdayNames = map[string]time.Weekday{
	"Dom": time.Sunday,
	"Seg": time.Monday,
	"Ter": time.Tuesday,
	"Qua": time.Wednesday,
	"Qui": time.Thursday,
	"Sex": time.Friday,
	"Sáb": time.Saturday,
}

// AllowsDate проверяет, что день недели даты входит в рабочие дни.
// День недели вычисляется по самой дате (без настенного времени и
// часового пояса), чтобы пикер дат и сохранённая строка не разъезжались
// на границе суток. Чистый предикат: некорректная дата — просто false,
// вызывающая сторона показывает блокирующее сообщение валидации.
func (h BusinessHours) AllowsDate(date string) bool {
	parsed, err := time.Parse(DateFormat, date)
	if err != nil {
		return false
	}
	return h.AllowsWeekday(parsed.Weekday())
}

// AllowsWeekday проверяет, что день недели входит в рабочие дни
func (h BusinessHours) AllowsWeekday(day time.Weekday) bool {
	for _, name := range h.Days {
		if wd, ok := weekdayNames[name]; ok && wd == day {
			return true
		}
	}
	return false
}

// Slots генерирует строго возрастающую сетку слотов с шагом 30 минут
// в интервале [Start, End), исключая перерыв [BreakStart, BreakEnd).
// При некорректной конфигурации (End <= Start, нечитаемые времена)
// возвращается фиксированная лестница DefaultSlotLadder, а не пустой
// список. Генератор детерминирован и не сверяется с занятостью:
// предотвращения двойного бронирования здесь нет.
func (h BusinessHours) Slots() []types.TimeString {
	start, err := types.NewTimeStringFromString(h.Start)
	if err != nil {
		return defaultLadder()
	}
	end, err := types.NewTimeStringFromString(h.End)
	if err != nil {
		return defaultLadder()
	}
	if !start.IsBefore(end) {
		return defaultLadder()
	}

	// Перерыв опционален: при нечитаемых границах считаем, что его нет
	breakStart, errBS := types.NewTimeStringFromString(h.BreakStart)
	breakEnd, errBE := types.NewTimeStringFromString(h.BreakEnd)
	hasBreak := errBS == nil && errBE == nil && breakStart.IsBefore(breakEnd)

	slots := make([]types.TimeString, 0)
	for cur := start; cur.IsBefore(end); {
		inBreak := hasBreak && !cur.IsBefore(breakStart) && cur.IsBefore(breakEnd)
		if !inBreak {
			slots = append(slots, cur)
		}

		next, err := cur.AddMinutes(SlotStepMinutes)
		if err != nil {
			break // вышли за пределы суток
		}
		cur = next
	}

	return slots
}

// ContainsSlot проверяет принадлежность времени сетке слотов
func (h BusinessHours) ContainsSlot(t types.TimeString) bool {
	for _, s := range h.Slots() {
		if s == t {
			return true
		}
	}
	return false
}

func defaultLadder() []types.TimeString {
	ladder := make([]types.TimeString, len(DefaultSlotLadder))
	copy(ladder, DefaultSlotLadder)
	return ladder
}
