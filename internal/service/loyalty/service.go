package loyalty

import (
	"fmt"

	"github.com/ivonestudio/studio-service/internal/domain"
)

// Service сервис клуба лояльности: баллы, карточки, рефералы и ваучеры
type Service struct {
	users    UserStore
	vouchers VoucherStore
	cfg      ConfigStore
	notif    Notifier
	log      Logger
}

// NewService создает новый экземпляр Service
func NewService(users UserStore, vouchers VoucherStore, cfg ConfigStore, notif Notifier, log Logger) *Service {
	return &Service{
		users:    users,
		vouchers: vouchers,
		cfg:      cfg,
		notif:    notif,
		log:      log,
	}
}

// UpdateUserPoints выставляет счётчики баллов клиентки. Начисление
// всегда ручное, значения задаются целиком и не могут быть
// отрицательными.
func (s *Service) UpdateUserPoints(phone string, points domain.UserPoints) (domain.User, error) {
	if !points.Valid() {
		return domain.User{}, fmt.Errorf("%w: counters must be non-negative", ErrInvalidPoints)
	}

	user, ok := s.users.UserByPhone(phone)
	if !ok {
		return domain.User{}, fmt.Errorf("%w: phone %s", ErrUserNotFound, phone)
	}

	user.Points = points
	s.users.SaveUser(user)
	s.log.Info("[UpdateUserPoints] user %s points set to %+v", user.Phone, points)

	return user, nil
}

// CardProgress прогресс клиентки по одной карточке лояльности
type CardProgress struct {
	Card    domain.LoyaltyCard `json:"card"`
	Current int                `json:"current"`
	Percent int                `json:"percent"`
}

// Progress возвращает прогресс по всем карточкам клуба. Процент
// ограничен сверху сотней даже при перевыполненной цели.
func (s *Service) Progress(phone string) ([]CardProgress, error) {
	user, ok := s.users.UserByPhone(phone)
	if !ok {
		return nil, fmt.Errorf("%w: phone %s", ErrUserNotFound, phone)
	}

	cards := s.cfg.SalonConfig().LoyaltyClub.Cards
	progress := make([]CardProgress, 0, len(cards))
	for _, card := range cards {
		current := user.Points.Get(card.Category)
		percent := 100
		if card.Target > 0 && current < card.Target {
			percent = current * 100 / card.Target
		}
		progress = append(progress, CardProgress{
			Card:    card,
			Current: current,
			Percent: percent,
		})
	}

	return progress, nil
}

// ConvertReferral отмечает приглашённую подругу как совершившую первый
// визит. Переход односторонний: converted обратно в joined не
// возвращается.
func (s *Service) ConvertReferral(referrerPhone, friendName string) (domain.User, error) {
	user, ok := s.users.UserByPhone(referrerPhone)
	if !ok {
		return domain.User{}, fmt.Errorf("%w: phone %s", ErrUserNotFound, referrerPhone)
	}

	found := false
	for i, entry := range user.Referrals {
		if entry.FriendName != friendName {
			continue
		}
		found = true
		if entry.Status == domain.ReferralJoined {
			user.Referrals[i].Status = domain.ReferralConverted
		}
	}
	if !found {
		return domain.User{}, fmt.Errorf("%w: friend %q of user %s", ErrReferralNotFound, friendName, referrerPhone)
	}

	s.users.SaveUser(user)
	s.log.Info("[ConvertReferral] referral %q of user %s converted", friendName, user.Phone)

	s.notif.SendTo(user.Phone,
		"Indicação Convertida! 🎉",
		fmt.Sprintf("%s fez a primeira visita ao estúdio. Seu desconto de indicação está garantido!", friendName),
		domain.NotifyPromo)

	return user, nil
}

// RedeemVoucher регистрирует использование ваучера. Счётчик погашений
// растёт без ограничения лимитом: лимит информационный и сверяется
// оператором вручную.
func (s *Service) RedeemVoucher(id string) (domain.Voucher, error) {
	voucher, ok := s.vouchers.VoucherByID(id)
	if !ok {
		return domain.Voucher{}, fmt.Errorf("%w: id %s", ErrVoucherNotFound, id)
	}

	voucher.Redeemed++
	s.vouchers.SaveVoucher(voucher)
	s.log.Info("[RedeemVoucher] voucher %s redeemed %d/%d", id, voucher.Redeemed, voucher.Limit)

	s.notif.Send(
		"Voucher Confirmado!",
		"Seu voucher foi validado com sucesso.",
		domain.NotifyPromo)

	return voucher, nil
}
