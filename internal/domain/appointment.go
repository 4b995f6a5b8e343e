package domain

import (
	"time"

	"github.com/ivonestudio/studio-service/pkg/types"
)

// AppointmentStatus статус записи в жизненном цикле
type AppointmentStatus string

const (
	StatusPending             AppointmentStatus = "pending"
	StatusConfirmed           AppointmentStatus = "confirmed"
	StatusInService           AppointmentStatus = "in_service"
	StatusCompleted           AppointmentStatus = "completed"
	StatusCancelled           AppointmentStatus = "cancelled"
	StatusRequestCancellation AppointmentStatus = "request_cancellation"
)

// PaymentStatus статус оплаты (ортогональная ось к статусу записи)
type PaymentStatus string

const (
	PaymentUnpaid              PaymentStatus = "unpaid"
	PaymentWaitingVerification PaymentStatus = "waiting_verification"
	PaymentPaid                PaymentStatus = "paid"
)

// CheckInStatus статус прибытия клиентки в студию
type CheckInStatus string

const (
	CheckInNone               CheckInStatus = "none"
	CheckInPendingPreferences CheckInStatus = "pending_preferences"
	CheckInCheckedIn          CheckInStatus = "checked_in"
)

// Appointment запись на процедуру.
// Принадлежит ровно одному клиенту (по телефону) и одной услуге (по id);
// данные услуги не денормализуются, а подтягиваются при чтении.
type Appointment struct {
	ID            string             `json:"id"`
	ServiceID     string             `json:"serviceId"`
	ClientName    string             `json:"clientName"`
	ClientPhone   string             `json:"clientPhone"`
	Date          string             `json:"date"` // YYYY-MM-DD
	Time          types.TimeString   `json:"time"` // HH:MM
	Status        AppointmentStatus  `json:"status"`
	PaymentStatus PaymentStatus      `json:"paymentStatus"`
	PaymentMethod string             `json:"paymentMethod,omitempty"`
	CheckInStatus CheckInStatus      `json:"checkInStatus"`
	CheckInPhoto  string             `json:"checkInPhoto,omitempty"`
	Preferences   *ClientPreferences `json:"preferences,omitempty"`
	ReminderSent  bool               `json:"reminderSent,omitempty"`
	Rating        int                `json:"rating,omitempty"`
	ReviewComment string             `json:"reviewComment,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`

	TermsAccepted   bool `json:"termsAccepted"`
	WhatsappConsent bool `json:"whatsappConsent"`
}

// IsTerminal проверяет, что запись в конечном состоянии.
// Из completed и cancelled переходов нет.
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCompleted || a.Status == StatusCancelled
}

// CanBeConfirmed проверяет возможность подтверждения оператором.
// request_cancellation тоже допустим: подтверждение в этом случае
// означает отклонение запроса на отмену.
func (a *Appointment) CanBeConfirmed() bool {
	return a.Status == StatusPending || a.Status == StatusRequestCancellation
}

// CanBeCancelled проверяет возможность отмены
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending ||
		a.Status == StatusConfirmed ||
		a.Status == StatusRequestCancellation
}

// CanRequestCancellation проверяет, что клиентка может запросить отмену
func (a *Appointment) CanRequestCancellation() bool {
	return a.Status == StatusConfirmed
}

// CanCheckIn проверяет возможность чек-ина.
// Чек-ин допустим только из confirmed и ровно один раз.
func (a *Appointment) CanCheckIn() bool {
	return a.Status == StatusConfirmed && a.CheckInStatus != CheckInCheckedIn
}

// CanBeCompleted проверяет возможность завершения процедуры
func (a *Appointment) CanBeCompleted() bool {
	return a.Status == StatusInService
}

// CanBeRated проверяет, что запись можно оценить: процедура завершена
// и оценка ещё не выставлялась (включая сентинель "не спрашивать")
func (a *Appointment) CanBeRated() bool {
	return a.Status == StatusCompleted && a.Rating == 0
}

// IsPaid проверяет, что оплата подтверждена. paid не откатывается.
func (a *Appointment) IsPaid() bool {
	return a.PaymentStatus == PaymentPaid
}
