package appointments

import (
	"fmt"
	"time"

	"github.com/ivonestudio/studio-service/internal/domain"
)

// Service сервис жизненного цикла записей
type Service struct {
	apps    AppointmentStore
	users   UserStore
	catalog CatalogStore
	cfg     ConfigStore
	notif   Notifier
	speaker Speaker
	log     Logger

	paymentNoticeDelay time.Duration
}

// NewService создает новый экземпляр Service
func NewService(apps AppointmentStore, users UserStore, catalog CatalogStore, cfg ConfigStore, notif Notifier, speaker Speaker, log Logger, paymentNoticeDelay time.Duration) *Service {
	return &Service{
		apps:    apps,
		users:   users,
		catalog: catalog,
		cfg:     cfg,
		notif:   notif,
		speaker: speaker,
		log:     log,

		paymentNoticeDelay: paymentNoticeDelay,
	}
}

func (s *Service) serviceName(serviceID string) string {
	svc, ok := s.catalog.ServiceByID(serviceID)
	if !ok {
		return "serviço"
	}
	return svc.Name
}

// Confirm подтверждает запись оператором. Из pending — обычное
// подтверждение, из request_cancellation — отказ в отмене (запись
// возвращается в confirmed без повторного уведомления о подтверждении).
func (s *Service) Confirm(id string) (domain.Appointment, error) {
	app, ok := s.apps.AppointmentByID(id)
	if !ok {
		return domain.Appointment{}, fmt.Errorf("%w: id %s", ErrAppointmentNotFound, id)
	}
	if !app.CanBeConfirmed() {
		return domain.Appointment{}, fmt.Errorf("%w: cannot confirm appointment in status %s", ErrInvalidTransition, app.Status)
	}

	declined := app.Status == domain.StatusRequestCancellation

	app.Status = domain.StatusConfirmed
	s.apps.SaveAppointment(app)

	if declined {
		s.log.Info("[Confirm] cancellation request declined, appointment %s back to confirmed", id)
		s.notif.SendTo(app.ClientPhone,
			"Cancelamento Não Aprovado",
			fmt.Sprintf("Não foi possível cancelar seu horário de %s no dia %s. Entre em contato com o estúdio para mais detalhes.",
				s.serviceName(app.ServiceID), domain.DisplayDate(app.Date)),
			domain.NotifySchedule)
		return app, nil
	}

	s.log.Info("[Confirm] appointment %s confirmed for %s at %s", id, app.Date, app.Time)
	s.notif.SendTo(app.ClientPhone,
		"Horário Confirmado! 💖",
		fmt.Sprintf("Seu horário de %s no dia %s às %s foi confirmado. Mal podemos esperar para te ver!",
			s.serviceName(app.ServiceID), domain.DisplayDate(app.Date), app.Time),
		domain.NotifySchedule)

	return app, nil
}

// Cancel отменяет запись. Клиентка может отменять только свои записи,
// оператор — любые в допустимом статусе.
func (s *Service) Cancel(id, actorPhone string, byOperator bool) (domain.Appointment, error) {
	app, ok := s.apps.AppointmentByID(id)
	if !ok {
		return domain.Appointment{}, fmt.Errorf("%w: id %s", ErrAppointmentNotFound, id)
	}
	if !byOperator && domain.NormalizePhone(actorPhone) != domain.NormalizePhone(app.ClientPhone) {
		return domain.Appointment{}, fmt.Errorf("%w: appointment %s belongs to another client", ErrAccessDenied, id)
	}
	if !app.CanBeCancelled() {
		return domain.Appointment{}, fmt.Errorf("%w: cannot cancel appointment in status %s", ErrInvalidTransition, app.Status)
	}

	app.Status = domain.StatusCancelled
	s.apps.SaveAppointment(app)
	s.log.Info("[Cancel] appointment %s cancelled (operator=%t)", id, byOperator)

	if byOperator {
		s.notif.SendTo(app.ClientPhone,
			"Horário Cancelado",
			fmt.Sprintf("Seu horário de %s no dia %s às %s foi cancelado. Entre em contato para reagendar.",
				s.serviceName(app.ServiceID), domain.DisplayDate(app.Date), app.Time),
			domain.NotifySchedule)
	} else {
		s.notif.Send(
			"Horário Cancelado",
			fmt.Sprintf("%s cancelou o horário de %s no dia %s às %s.",
				app.ClientName, s.serviceName(app.ServiceID), domain.DisplayDate(app.Date), app.Time),
			domain.NotifySchedule)
	}

	return app, nil
}

// RequestCancellation переводит подтвержденную запись в статус запроса
// отмены. Решение остается за оператором: Confirm отклоняет запрос,
// Cancel утверждает его.
func (s *Service) RequestCancellation(id, actorPhone string) (domain.Appointment, error) {
	app, ok := s.apps.AppointmentByID(id)
	if !ok {
		return domain.Appointment{}, fmt.Errorf("%w: id %s", ErrAppointmentNotFound, id)
	}
	if domain.NormalizePhone(actorPhone) != domain.NormalizePhone(app.ClientPhone) {
		return domain.Appointment{}, fmt.Errorf("%w: appointment %s belongs to another client", ErrAccessDenied, id)
	}
	if !app.CanRequestCancellation() {
		return domain.Appointment{}, fmt.Errorf("%w: cannot request cancellation in status %s", ErrInvalidTransition, app.Status)
	}

	app.Status = domain.StatusRequestCancellation
	s.apps.SaveAppointment(app)
	s.log.Info("[RequestCancellation] appointment %s awaiting operator decision", id)

	s.notif.Send(
		"Pedido de Cancelamento ⚠️",
		fmt.Sprintf("%s pediu o cancelamento do horário de %s no dia %s às %s.",
			app.ClientName, s.serviceName(app.ServiceID), domain.DisplayDate(app.Date), app.Time),
		domain.NotifySchedule)

	return app, nil
}

// CheckIn регистрирует прибытие клиентки. Статус checked_in и перевод
// записи в in_service выполняются одной записью состояния.
func (s *Service) CheckIn(id, actorPhone, photo string, prefs *domain.ClientPreferences) (domain.Appointment, error) {
	app, ok := s.apps.AppointmentByID(id)
	if !ok {
		return domain.Appointment{}, fmt.Errorf("%w: id %s", ErrAppointmentNotFound, id)
	}
	if domain.NormalizePhone(actorPhone) != domain.NormalizePhone(app.ClientPhone) {
		return domain.Appointment{}, fmt.Errorf("%w: appointment %s belongs to another client", ErrAccessDenied, id)
	}
	if !app.CanCheckIn() {
		return domain.Appointment{}, fmt.Errorf("%w: cannot check in appointment in status %s", ErrInvalidTransition, app.Status)
	}

	app.CheckInStatus = domain.CheckInCheckedIn
	app.Status = domain.StatusInService
	app.CheckInPhoto = photo
	if prefs != nil {
		app.Preferences = prefs
	}
	s.apps.SaveAppointment(app)

	if prefs != nil && prefs.SaveToProfile {
		s.saveUserPreferences(app.ClientPhone, *prefs)
	}

	s.log.Info("[CheckIn] client %s checked in for appointment %s", app.ClientName, id)
	s.speaker.Speak(fmt.Sprintf("Check-in realizado. Bem-vinda, %s.", app.ClientName))

	s.notif.Send(
		"Cliente no Estúdio 📍",
		fmt.Sprintf("%s acabou de fazer check-in para o horário das %s.", app.ClientName, app.Time),
		domain.NotifySchedule)

	pixName := s.cfg.SalonConfig().PixName
	s.notif.SendToAfter(s.paymentNoticeDelay, app.ClientPhone,
		"Formas de Pagamento 💳",
		fmt.Sprintf("Esperamos que esteja tendo uma ótima experiência! Quando quiser, você já pode acertar os detalhes do pagamento. Aceitamos Pix (%s), cartão ou dinheiro.", pixName),
		domain.NotifySchedule)

	return app, nil
}

// Complete завершает обслуживание. Повторный вызов для уже завершенной
// записи — no-op без ошибки и без повторных уведомлений.
func (s *Service) Complete(id string) (domain.Appointment, error) {
	app, ok := s.apps.AppointmentByID(id)
	if !ok {
		return domain.Appointment{}, fmt.Errorf("%w: id %s", ErrAppointmentNotFound, id)
	}
	if app.Status == domain.StatusCompleted {
		return app, nil
	}
	if !app.CanBeCompleted() {
		return domain.Appointment{}, fmt.Errorf("%w: cannot complete appointment in status %s", ErrInvalidTransition, app.Status)
	}

	app.Status = domain.StatusCompleted
	s.apps.SaveAppointment(app)
	s.log.Info("[Complete] appointment %s completed", id)

	return app, nil
}

// Pay отмечает оплату со стороны клиентки: unpaid переходит в
// waiting_verification с выбранным способом. Повторная отметка в
// ожидании проверки — no-op.
func (s *Service) Pay(id, actorPhone, method string) (domain.Appointment, error) {
	app, ok := s.apps.AppointmentByID(id)
	if !ok {
		return domain.Appointment{}, fmt.Errorf("%w: id %s", ErrAppointmentNotFound, id)
	}
	if domain.NormalizePhone(actorPhone) != domain.NormalizePhone(app.ClientPhone) {
		return domain.Appointment{}, fmt.Errorf("%w: appointment %s belongs to another client", ErrAccessDenied, id)
	}
	if method == "" {
		return domain.Appointment{}, fmt.Errorf("%w: payment method is required", ErrInvalidInput)
	}
	switch app.PaymentStatus {
	case domain.PaymentPaid:
		return domain.Appointment{}, fmt.Errorf("%w: payment already confirmed", ErrInvalidTransition)
	case domain.PaymentWaitingVerification:
		return app, nil
	}

	app.PaymentStatus = domain.PaymentWaitingVerification
	app.PaymentMethod = method
	s.apps.SaveAppointment(app)
	s.log.Info("[Pay] appointment %s payment marked via %s, waiting verification", id, method)

	s.notif.Send(
		"Pagamento Enviado 💸",
		fmt.Sprintf("%s marcou o pagamento de %s como realizado via %s.",
			app.ClientName, s.serviceName(app.ServiceID), method),
		domain.NotifySchedule)

	return app, nil
}

// ConfirmPayment подтверждает оплату оператором. Статус оплаты уходит в
// paid без промежуточного ожидания, запись в обслуживании одновременно
// завершается. Повторный вызов — no-op.
func (s *Service) ConfirmPayment(id string) (domain.Appointment, error) {
	app, ok := s.apps.AppointmentByID(id)
	if !ok {
		return domain.Appointment{}, fmt.Errorf("%w: id %s", ErrAppointmentNotFound, id)
	}
	if app.Status == domain.StatusCancelled {
		return domain.Appointment{}, fmt.Errorf("%w: appointment is cancelled", ErrInvalidTransition)
	}
	if app.PaymentStatus == domain.PaymentPaid {
		return app, nil
	}

	app.PaymentStatus = domain.PaymentPaid
	if app.Status == domain.StatusInService {
		app.Status = domain.StatusCompleted
	}
	s.apps.SaveAppointment(app)
	s.log.Info("[ConfirmPayment] appointment %s payment confirmed, status %s", id, app.Status)

	s.notif.SendTo(app.ClientPhone,
		"Pagamento Confirmado ✨",
		fmt.Sprintf("Recebemos seu pagamento do serviço de %s. Obrigada pela preferência!", s.serviceName(app.ServiceID)),
		domain.NotifySchedule)

	return app, nil
}

// Rate сохраняет оценку завершенной записи. Принимает 1..5 либо
// значение «отказалась оценивать», выставляется ровно один раз.
func (s *Service) Rate(id, actorPhone string, rating int, comment string) (domain.Appointment, error) {
	app, ok := s.apps.AppointmentByID(id)
	if !ok {
		return domain.Appointment{}, fmt.Errorf("%w: id %s", ErrAppointmentNotFound, id)
	}
	if domain.NormalizePhone(actorPhone) != domain.NormalizePhone(app.ClientPhone) {
		return domain.Appointment{}, fmt.Errorf("%w: appointment %s belongs to another client", ErrAccessDenied, id)
	}
	if rating != domain.RatingDismissed && (rating < domain.MinRating || rating > domain.MaxRating) {
		return domain.Appointment{}, fmt.Errorf("%w: rating %d is out of range", ErrInvalidRating, rating)
	}
	if app.Status != domain.StatusCompleted {
		return domain.Appointment{}, fmt.Errorf("%w: cannot rate appointment in status %s", ErrInvalidTransition, app.Status)
	}
	if !app.CanBeRated() {
		return domain.Appointment{}, fmt.Errorf("%w: appointment %s", ErrAlreadyRated, id)
	}

	app.Rating = rating
	if rating != domain.RatingDismissed {
		app.ReviewComment = comment
	}
	s.apps.SaveAppointment(app)
	s.log.Info("[Rate] appointment %s rated %d", id, rating)

	return app, nil
}

// UpdatePreferences сохраняет предпочтения визита; при saveToProfile
// копия попадает в постоянный профиль клиентки.
func (s *Service) UpdatePreferences(id, actorPhone string, prefs domain.ClientPreferences) (domain.Appointment, error) {
	app, ok := s.apps.AppointmentByID(id)
	if !ok {
		return domain.Appointment{}, fmt.Errorf("%w: id %s", ErrAppointmentNotFound, id)
	}
	if domain.NormalizePhone(actorPhone) != domain.NormalizePhone(app.ClientPhone) {
		return domain.Appointment{}, fmt.Errorf("%w: appointment %s belongs to another client", ErrAccessDenied, id)
	}
	if app.IsTerminal() {
		return domain.Appointment{}, fmt.Errorf("%w: cannot update preferences in status %s", ErrInvalidTransition, app.Status)
	}

	app.Preferences = &prefs
	if app.CheckInStatus == domain.CheckInNone {
		app.CheckInStatus = domain.CheckInPendingPreferences
	}
	s.apps.SaveAppointment(app)

	if prefs.SaveToProfile {
		s.saveUserPreferences(app.ClientPhone, prefs)
	}

	s.log.Info("[UpdatePreferences] appointment %s preferences updated", id)
	return app, nil
}

func (s *Service) saveUserPreferences(phone string, prefs domain.ClientPreferences) {
	user, ok := s.users.UserByPhone(phone)
	if !ok {
		s.log.Warn("[saveUserPreferences] user %s not found, profile preferences skipped", phone)
		return
	}
	prefs.SaveToProfile = false
	user.PermanentPreferences = &prefs
	s.users.SaveUser(user)
}
