// Package reminder рассылает напоминания о завтрашних подтвержденных
// записях по расписанию cron.
package reminder

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ivonestudio/studio-service/internal/domain"
)

// AppointmentStore интерфейс состояния записей
type AppointmentStore interface {
	Appointments() []domain.Appointment
	SaveAppointment(app domain.Appointment)
}

// CatalogStore интерфейс каталога услуг
type CatalogStore interface {
	ServiceByID(id string) (domain.Service, bool)
}

// Notifier диспетчер уведомлений
type Notifier interface {
	SendTo(phone, title, body string, category domain.NotificationCategory)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Scheduler планировщик напоминаний
type Scheduler struct {
	apps    AppointmentStore
	catalog CatalogStore
	notif   Notifier
	log     Logger

	schedule string
	cron     *cron.Cron
}

// NewScheduler создает новый экземпляр Scheduler. schedule — выражение
// cron из пяти полей, например "0 9 * * *".
func NewScheduler(apps AppointmentStore, catalog CatalogStore, notif Notifier, log Logger, schedule string) *Scheduler {
	return &Scheduler{
		apps:    apps,
		catalog: catalog,
		notif:   notif,
		log:     log,

		schedule: schedule,
		cron:     cron.New(),
	}
}

// Start регистрирует задачу и запускает планировщик
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.Run); err != nil {
		return fmt.Errorf("failed to schedule reminder job: %w", err)
	}
	s.cron.Start()
	s.log.Info("[Start] reminder scheduler started with schedule %q", s.schedule)
	return nil
}

// Stop останавливает планировщик и дожидается текущей задачи
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("[Stop] reminder scheduler stopped")
}

// Run отправляет напоминания по завтрашним подтвержденным записям.
// Каждая запись напоминается не более одного раза (флаг reminderSent).
func (s *Scheduler) Run() {
	tomorrow := time.Now().AddDate(0, 0, 1).Format(domain.DateFormat)
	sent := 0

	for _, app := range s.apps.Appointments() {
		if app.Date != tomorrow || app.Status != domain.StatusConfirmed || app.ReminderSent {
			continue
		}

		serviceName := "serviço"
		if svc, ok := s.catalog.ServiceByID(app.ServiceID); ok {
			serviceName = svc.Name
		}

		s.notif.SendTo(app.ClientPhone,
			"Lembrete de Horário ⏰",
			fmt.Sprintf("Amanhã, dia %s às %s, temos seu horário de %s. Até lá!",
				domain.DisplayDate(app.Date), app.Time, serviceName),
			domain.NotifySchedule)

		app.ReminderSent = true
		s.apps.SaveAppointment(app)
		sent++
	}

	if sent > 0 {
		s.log.Info("[Run] sent %d reminders for %s", sent, tomorrow)
	}
}
