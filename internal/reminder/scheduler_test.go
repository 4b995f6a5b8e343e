package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivonestudio/studio-service/internal/domain"
)

type fakeState struct {
	apps     []domain.Appointment
	services map[string]domain.Service
}

func (f *fakeState) Appointments() []domain.Appointment { return f.apps }

func (f *fakeState) SaveAppointment(app domain.Appointment) {
	for i, a := range f.apps {
		if a.ID == app.ID {
			f.apps[i] = app
			return
		}
	}
	f.apps = append(f.apps, app)
}

func (f *fakeState) ServiceByID(id string) (domain.Service, bool) {
	svc, ok := f.services[id]
	return svc, ok
}

type sentReminder struct {
	phone string
	title string
	body  string
}

type fakeNotifier struct {
	sent []sentReminder
}

func (f *fakeNotifier) SendTo(phone, title, body string, _ domain.NotificationCategory) {
	f.sent = append(f.sent, sentReminder{phone: phone, title: title, body: body})
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestScheduler_Run(t *testing.T) {
	tomorrow := time.Now().AddDate(0, 0, 1).Format(domain.DateFormat)
	dayAfter := time.Now().AddDate(0, 0, 2).Format(domain.DateFormat)

	state := &fakeState{
		apps: []domain.Appointment{
			{ID: "a1", ClientPhone: "11999990001", ServiceID: "2", Date: tomorrow, Time: "10:00", Status: domain.StatusConfirmed},
			{ID: "a2", ClientPhone: "11999990002", ServiceID: "2", Date: tomorrow, Time: "11:00", Status: domain.StatusPending},
			{ID: "a3", ClientPhone: "11999990003", ServiceID: "2", Date: dayAfter, Time: "10:00", Status: domain.StatusConfirmed},
			{ID: "a4", ClientPhone: "11999990004", ServiceID: "2", Date: tomorrow, Time: "14:00", Status: domain.StatusConfirmed, ReminderSent: true},
		},
		services: map[string]domain.Service{
			"2": {ID: "2", Name: "Escova + Hidratação"},
		},
	}
	notif := &fakeNotifier{}

	s := NewScheduler(state, state, notif, nopLogger{}, "0 9 * * *")
	s.Run()

	require.Len(t, notif.sent, 1)
	assert.Equal(t, "11999990001", notif.sent[0].phone)
	assert.Equal(t, "Lembrete de Horário ⏰", notif.sent[0].title)
	assert.Contains(t, notif.sent[0].body, "às 10:00")
	assert.Contains(t, notif.sent[0].body, "Escova + Hidratação")

	assert.True(t, state.apps[0].ReminderSent)
	assert.False(t, state.apps[1].ReminderSent)
	assert.False(t, state.apps[2].ReminderSent)

	// повторный запуск ничего не шлет заново
	s.Run()
	assert.Len(t, notif.sent, 1)
}

func TestScheduler_Run_UnknownService(t *testing.T) {
	tomorrow := time.Now().AddDate(0, 0, 1).Format(domain.DateFormat)

	state := &fakeState{
		apps: []domain.Appointment{
			{ID: "a1", ClientPhone: "11999990001", ServiceID: "ghost", Date: tomorrow, Time: "10:00", Status: domain.StatusConfirmed},
		},
		services: map[string]domain.Service{},
	}
	notif := &fakeNotifier{}

	s := NewScheduler(state, state, notif, nopLogger{}, "0 9 * * *")
	s.Run()

	require.Len(t, notif.sent, 1)
	assert.Contains(t, notif.sent[0].body, "horário de serviço")
}

func TestScheduler_Start_InvalidSchedule(t *testing.T) {
	s := NewScheduler(&fakeState{}, &fakeState{}, &fakeNotifier{}, nopLogger{}, "not a schedule")
	assert.Error(t, s.Start())
}
