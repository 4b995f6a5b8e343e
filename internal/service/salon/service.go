package salon

import (
	"fmt"

	"github.com/ivonestudio/studio-service/internal/domain"
)

// Service сервис настроек салона и витрины
type Service struct {
	cfg ConfigStore
	log Logger
}

// NewService создает новый экземпляр Service
func NewService(cfg ConfigStore, log Logger) *Service {
	return &Service{
		cfg: cfg,
		log: log,
	}
}

// ConfigUpdate частичное обновление конфигурации салона. Нулевые
// указатели оставляют соответствующую секцию без изменений.
type ConfigUpdate struct {
	PointsPerService     *int
	PointsTarget         *int
	PointsValidityMonths *int
	PixPrepayment        *bool
	PixName              *string

	BusinessHours *domain.BusinessHours
	LoyaltyClub   *domain.LoyaltyClub
	DynamicText   *domain.DynamicText
	Colors        *domain.ThemeColors
}

// Config возвращает текущую конфигурацию салона
func (s *Service) Config() domain.SalonConfig {
	return s.cfg.SalonConfig()
}

// UpdateConfig применяет частичное обновление конфигурации.
// Корректность рабочих часов здесь не проверяется: генератор слотов
// сам уходит на дефолтную сетку при несогласованных значениях.
func (s *Service) UpdateConfig(upd ConfigUpdate) domain.SalonConfig {
	cfg := s.cfg.SalonConfig()

	if upd.PointsPerService != nil {
		cfg.PointsPerService = *upd.PointsPerService
	}
	if upd.PointsTarget != nil {
		cfg.PointsTarget = *upd.PointsTarget
	}
	if upd.PointsValidityMonths != nil {
		cfg.PointsValidityMonths = *upd.PointsValidityMonths
	}
	if upd.PixPrepayment != nil {
		cfg.PixPrepayment = *upd.PixPrepayment
	}
	if upd.PixName != nil {
		cfg.PixName = *upd.PixName
	}
	if upd.BusinessHours != nil {
		cfg.BusinessHours = *upd.BusinessHours
	}
	if upd.LoyaltyClub != nil {
		cfg.LoyaltyClub = *upd.LoyaltyClub
	}
	if upd.DynamicText != nil {
		cfg.DynamicText = *upd.DynamicText
	}
	if upd.Colors != nil {
		cfg.Colors = *upd.Colors
	}

	s.cfg.SetSalonConfig(cfg)
	s.log.Info("[UpdateConfig] salon config updated")

	return cfg
}

// WeeklyOffers возвращает акции дней недели
func (s *Service) WeeklyOffers() []domain.WeeklyOffer {
	return s.cfg.WeeklyOffers()
}

// OfferUpdate частичное обновление акционного дня
type OfferUpdate struct {
	Title  *string
	Offers *[]domain.WeeklyOfferItem
	Active *bool
}

// UpdateWeeklyOffer применяет частичное обновление акции указанного дня
// недели (0 = воскресенье)
func (s *Service) UpdateWeeklyOffer(day int, upd OfferUpdate) (domain.WeeklyOffer, error) {
	if day < 0 || day > 6 {
		return domain.WeeklyOffer{}, fmt.Errorf("%w: day %d is out of range", ErrInvalidInput, day)
	}

	var offer domain.WeeklyOffer
	found := false
	for _, o := range s.cfg.WeeklyOffers() {
		if o.Day == day {
			offer = o
			found = true
			break
		}
	}
	if !found {
		return domain.WeeklyOffer{}, fmt.Errorf("%w: day %d", ErrOfferNotFound, day)
	}

	if upd.Title != nil {
		offer.Title = *upd.Title
	}
	if upd.Offers != nil {
		offer.Offers = *upd.Offers
	}
	if upd.Active != nil {
		offer.Active = *upd.Active
	}

	s.cfg.SaveWeeklyOffer(offer)
	s.log.Info("[UpdateWeeklyOffer] offer for day %d updated", day)

	return offer, nil
}

// Accessibility возвращает настройки доступности
func (s *Service) Accessibility() domain.AccessibilityPrefs {
	return s.cfg.Accessibility()
}

// UpdateAccessibility заменяет настройки доступности целиком
func (s *Service) UpdateAccessibility(prefs domain.AccessibilityPrefs) domain.AccessibilityPrefs {
	s.cfg.SetAccessibility(prefs)
	s.log.Info("[UpdateAccessibility] accessibility prefs updated (readAloud=%t)", prefs.ReadAloud)
	return prefs
}
