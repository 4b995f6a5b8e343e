package manage_salon

import (
	"github.com/ivonestudio/studio-service/internal/domain"
	"github.com/ivonestudio/studio-service/internal/service/salon"
)

// SalonService сервис настроек салона и витрины
type SalonService interface {
	Config() domain.SalonConfig
	UpdateConfig(upd salon.ConfigUpdate) domain.SalonConfig
	WeeklyOffers() []domain.WeeklyOffer
	UpdateWeeklyOffer(day int, upd salon.OfferUpdate) (domain.WeeklyOffer, error)
	Accessibility() domain.AccessibilityPrefs
	UpdateAccessibility(prefs domain.AccessibilityPrefs) domain.AccessibilityPrefs
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
