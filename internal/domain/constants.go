package domain

import "github.com/ivonestudio/studio-service/pkg/types"

// Форматы даты и времени
const (
	TimeFormat        = "15:04"      // HH:MM
	DateFormat        = "2006-01-02" // YYYY-MM-DD
	DisplayDateFormat = "02/01/2006" // DD/MM/YYYY, формат уведомлений для клиентов
)

// Параметры генерации слотов
const (
	SlotStepMinutes = 30 // шаг сетки расписания
)

// ReferralCodePrefix префикс реферального кода клиента
const ReferralCodePrefix = "IVONE-"

// ReferralCodeSuffixLength длина случайной части реферального кода (base-36)
const ReferralCodeSuffixLength = 5

// RatingDismissed сентинельное значение оценки: клиент закрыл опрос,
// повторно не спрашивать
const RatingDismissed = -1

// MaxRating граница шкалы оценки
const (
	MinRating = 1
	MaxRating = 5
)

// DefaultSlotLadder фиксированная лестница слотов, используемая при
// некорректной конфигурации рабочих часов. Некорректно настроенный салон
// не должен оставить клиентов вообще без вариантов времени.
var DefaultSlotLadder = []types.TimeString{
	"09:00", "10:00", "11:00", "13:00", "14:00",
	"15:00", "16:00", "17:00", "18:00",
}
