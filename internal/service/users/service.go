package users

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/ivonestudio/studio-service/internal/domain"
)

const referralCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Service сервис учётных записей клиенток
type Service struct {
	users   UserStore
	speaker Speaker
	log     Logger
}

// NewService создает новый экземпляр Service
func NewService(users UserStore, speaker Speaker, log Logger) *Service {
	return &Service{
		users:   users,
		speaker: speaker,
		log:     log,
	}
}

// LoginRequest данные входа. Телефон служит идентификатором,
// реферальный код опционален и учитывается только при первом входе.
type LoginRequest struct {
	Name         string
	Phone        string
	BirthDate    string
	ReferralCode string
}

// Login выполняет вход с созданием учётной записи при первом обращении.
// Существующая запись обновляет имя и дату рождения, реферальные связи
// повторно не создаются.
func (s *Service) Login(req LoginRequest) (domain.User, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Phone) == "" {
		return domain.User{}, fmt.Errorf("%w: name and phone are required", ErrInvalidInput)
	}

	phone := domain.NormalizePhone(req.Phone)
	if phone == "" {
		return domain.User{}, fmt.Errorf("%w: phone must contain digits", ErrInvalidInput)
	}

	if user, ok := s.users.UserByPhone(phone); ok {
		user.Name = req.Name
		if req.BirthDate != "" {
			user.BirthDate = req.BirthDate
		}
		s.users.SaveUser(user)
		s.log.Info("[Login] returning user %s", phone)
		s.speaker.Speak(fmt.Sprintf("Bem-vinda de volta, %s.", user.FirstName()))
		return user, nil
	}

	user := domain.User{
		ID:           phone,
		Name:         req.Name,
		Phone:        phone,
		BirthDate:    req.BirthDate,
		ReferralCode: s.generateReferralCode(),
		Referrals:    []domain.ReferralEntry{},
		CreatedAt:    time.Now(),
	}

	if code := strings.ToUpper(strings.TrimSpace(req.ReferralCode)); code != "" {
		if referrer, ok := s.users.UserByReferralCode(code); ok && referrer.Phone != phone {
			user.ReferredBy = referrer.Phone
			referrer.Referrals = append(referrer.Referrals, domain.ReferralEntry{
				FriendName: user.Name,
				Status:     domain.ReferralJoined,
			})
			s.users.SaveUser(referrer)
			s.log.Info("[Login] referral %s credited to %s", code, referrer.Phone)
		} else {
			s.log.Warn("[Login] referral code %s not recognized, ignored", code)
		}
	}

	s.users.SaveUser(user)
	s.log.Info("[Login] new user %s registered with code %s", phone, user.ReferralCode)
	s.speaker.Speak(fmt.Sprintf("Bem-vinda, %s.", user.FirstName()))

	return user, nil
}

// AcceptTerms фиксирует согласие с условиями обслуживания
func (s *Service) AcceptTerms(phone string) (domain.User, error) {
	user, ok := s.users.UserByPhone(phone)
	if !ok {
		return domain.User{}, fmt.Errorf("%w: phone %s", ErrUserNotFound, phone)
	}

	user.TermsAccepted = true
	s.users.SaveUser(user)
	s.log.Info("[AcceptTerms] user %s accepted terms", user.Phone)

	return user, nil
}

// UpdateProfileRequest частичное обновление профиля
type UpdateProfileRequest struct {
	Name                 *string
	BirthDate            *string
	PermanentPreferences *domain.ClientPreferences
}

// UpdateProfile обновляет переданные поля профиля
func (s *Service) UpdateProfile(phone string, req UpdateProfileRequest) (domain.User, error) {
	user, ok := s.users.UserByPhone(phone)
	if !ok {
		return domain.User{}, fmt.Errorf("%w: phone %s", ErrUserNotFound, phone)
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return domain.User{}, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
		}
		user.Name = *req.Name
	}
	if req.BirthDate != nil {
		user.BirthDate = *req.BirthDate
	}
	if req.PermanentPreferences != nil {
		prefs := *req.PermanentPreferences
		prefs.SaveToProfile = false
		user.PermanentPreferences = &prefs
	}

	s.users.SaveUser(user)
	s.log.Info("[UpdateProfile] user %s profile updated", user.Phone)

	return user, nil
}

// Delete удаляет учётную запись. Только оператор; записи и история
// посещений при этом не затрагиваются.
func (s *Service) Delete(phone string) error {
	if !s.users.DeleteUser(domain.NormalizePhone(phone)) {
		return fmt.Errorf("%w: phone %s", ErrUserNotFound, phone)
	}
	s.log.Info("[Delete] user %s removed", phone)
	return nil
}

// generateReferralCode создает код вида IVONE-XXXXX. Уникальность
// проверяется по текущему состоянию.
func (s *Service) generateReferralCode() string {
	for {
		b := make([]byte, domain.ReferralCodeSuffixLength)
		for i := range b {
			b[i] = referralCodeAlphabet[rand.Intn(len(referralCodeAlphabet))]
		}
		code := domain.ReferralCodePrefix + string(b)
		if _, ok := s.users.UserByReferralCode(code); !ok {
			return code
		}
	}
}
