package create_booking

import "github.com/ivonestudio/studio-service/internal/domain"

// AppointmentStore интерфейс состояния записей
type AppointmentStore interface {
	SaveAppointment(app domain.Appointment)
}

// CatalogStore интерфейс каталога услуг
type CatalogStore interface {
	ServiceByID(id string) (domain.Service, bool)
}

// ConfigStore интерфейс конфигурации салона
type ConfigStore interface {
	SalonConfig() domain.SalonConfig
}

// Notifier диспетчер уведомлений
type Notifier interface {
	Send(title, body string, category domain.NotificationCategory)
	SendTo(phone, title, body string, category domain.NotificationCategory)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
