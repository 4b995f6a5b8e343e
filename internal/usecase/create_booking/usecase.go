package create_booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ivonestudio/studio-service/internal/domain"
	"github.com/ivonestudio/studio-service/pkg/types"
)

// UseCase сценарий создания записи: валидация, проверка рабочих часов
// и сетки слотов, создание записи и уведомления сторон
type UseCase struct {
	apps    AppointmentStore
	catalog CatalogStore
	cfg     ConfigStore
	notif   Notifier
	log     Logger
}

// NewUseCase создает новый экземпляр UseCase
func NewUseCase(apps AppointmentStore, catalog CatalogStore, cfg ConfigStore, notif Notifier, log Logger) *UseCase {
	return &UseCase{
		apps:    apps,
		catalog: catalog,
		cfg:     cfg,
		notif:   notif,
		log:     log,
	}
}

// Handle создает запись. Клиентская запись рождается в pending и
// уведомляет оператора; запись оператором минует pending и сразу
// уведомляет клиентку о подтверждении. Занятость слота не проверяется:
// два создания на один слот дают две записи.
func (u *UseCase) Handle(req Request) (Response, error) {
	if err := validateRequest(req); err != nil {
		u.log.Warn("[Handle] booking rejected: %v", err)
		return Response{}, err
	}

	svc, ok := u.catalog.ServiceByID(req.ServiceID)
	if !ok {
		return Response{}, fmt.Errorf("%w: id %s", ErrServiceNotFound, req.ServiceID)
	}

	hours := u.cfg.SalonConfig().BusinessHours
	if !hours.AllowsDate(req.Date) {
		return Response{}, fmt.Errorf("%w: %s", ErrDateNotAllowed, req.Date)
	}
	slot := types.TimeString(req.Time)
	if !hours.ContainsSlot(slot) {
		return Response{}, fmt.Errorf("%w: %s", ErrSlotNotAllowed, req.Time)
	}

	status := domain.StatusPending
	if req.ByOperator {
		status = domain.StatusConfirmed
	}

	app := domain.Appointment{
		ID:          uuid.NewString(),
		ServiceID:   svc.ID,
		ClientName:  req.ClientName,
		ClientPhone: domain.NormalizePhone(req.ClientPhone),
		Date:        req.Date,
		Time:        slot,

		Status:        status,
		PaymentStatus: domain.PaymentUnpaid,
		CheckInStatus: domain.CheckInNone,

		TermsAccepted:   req.TermsAccepted,
		WhatsappConsent: req.WhatsappConsent,
		CreatedAt:       time.Now(),
	}
	u.apps.SaveAppointment(app)
	u.log.Info("[Handle] appointment %s created in status %s for %s at %s", app.ID, app.Status, app.Date, app.Time)

	if req.ByOperator {
		u.notif.SendTo(app.ClientPhone,
			"Horário Confirmado! 💖",
			fmt.Sprintf("Seu horário de %s no dia %s às %s foi confirmado. Mal podemos esperar para te ver!",
				svc.Name, domain.DisplayDate(app.Date), app.Time),
			domain.NotifySchedule)
	} else {
		u.notif.Send(
			"Novo Agendamento Recebido ✨",
			fmt.Sprintf("%s agendou %s para o dia %s às %s.",
				app.ClientName, svc.Name, domain.DisplayDate(app.Date), app.Time),
			domain.NotifySchedule)
	}

	return Response{Appointment: app}, nil
}
