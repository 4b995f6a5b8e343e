package domain

import "time"

// NotificationCategory категория уведомления
type NotificationCategory string

const (
	NotifyPromo    NotificationCategory = "promo"
	NotifySchedule NotificationCategory = "schedule"
	NotifyNews     NotificationCategory = "news"
)

// Notification уведомление ленты. Лента живёт только в памяти сессии:
// уведомления не входят в персистентную раскладку и не переживают рестарт.
type Notification struct {
	ID        string               `json:"id"`
	Title     string               `json:"title"`
	Body      string               `json:"body"`
	Category  NotificationCategory `json:"type"`
	Timestamp time.Time            `json:"timestamp"`
	Read      bool                 `json:"read"`
}
