package salon

import "github.com/ivonestudio/studio-service/internal/domain"

// ConfigStore интерфейс конфигурации салона и витрины
type ConfigStore interface {
	SalonConfig() domain.SalonConfig
	SetSalonConfig(cfg domain.SalonConfig)
	WeeklyOffers() []domain.WeeklyOffer
	SaveWeeklyOffer(offer domain.WeeklyOffer)
	Accessibility() domain.AccessibilityPrefs
	SetAccessibility(prefs domain.AccessibilityPrefs)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
