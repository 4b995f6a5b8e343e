package appointments

import (
	"time"

	"github.com/ivonestudio/studio-service/internal/domain"
)

// AppointmentStore интерфейс состояния записей
type AppointmentStore interface {
	AppointmentByID(id string) (domain.Appointment, bool)
	SaveAppointment(app domain.Appointment)
}

// UserStore интерфейс состояния клиенток
type UserStore interface {
	UserByPhone(phone string) (domain.User, bool)
	SaveUser(user domain.User)
}

// CatalogStore интерфейс каталога услуг
type CatalogStore interface {
	ServiceByID(id string) (domain.Service, bool)
}

// ConfigStore интерфейс конфигурации салона
type ConfigStore interface {
	SalonConfig() domain.SalonConfig
}

// Notifier диспетчер уведомлений. Fire-and-forget: вызовы не ожидаются
// и не подтверждаются.
type Notifier interface {
	Send(title, body string, category domain.NotificationCategory)
	SendTo(phone, title, body string, category domain.NotificationCategory)
	SendToAfter(delay time.Duration, phone, title, body string, category domain.NotificationCategory)
}

// Speaker опциональный хук озвучивания
type Speaker interface {
	Speak(text string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
