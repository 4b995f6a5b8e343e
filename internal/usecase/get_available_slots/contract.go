package get_available_slots

import "github.com/ivonestudio/studio-service/internal/domain"

// ConfigStore интерфейс конфигурации салона
type ConfigStore interface {
	SalonConfig() domain.SalonConfig
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
