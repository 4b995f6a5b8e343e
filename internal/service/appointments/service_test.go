package appointments

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivonestudio/studio-service/internal/domain"
	"github.com/ivonestudio/studio-service/pkg/types"
)

type fakeState struct {
	apps  map[string]domain.Appointment
	users map[string]domain.User
}

func newFakeState() *fakeState {
	return &fakeState{
		apps:  make(map[string]domain.Appointment),
		users: make(map[string]domain.User),
	}
}

func (f *fakeState) AppointmentByID(id string) (domain.Appointment, bool) {
	app, ok := f.apps[id]
	return app, ok
}

func (f *fakeState) SaveAppointment(app domain.Appointment) { f.apps[app.ID] = app }

func (f *fakeState) UserByPhone(phone string) (domain.User, bool) {
	user, ok := f.users[phone]
	return user, ok
}

func (f *fakeState) SaveUser(user domain.User) { f.users[user.Phone] = user }

func (f *fakeState) ServiceByID(id string) (domain.Service, bool) {
	if id == "escova" {
		return domain.Service{ID: "escova", Name: "Escova Modelada"}, true
	}
	return domain.Service{}, false
}

func (f *fakeState) SalonConfig() domain.SalonConfig {
	return domain.SalonConfig{PixName: "Ivone Hair Studio"}
}

type sentNotification struct {
	phone string
	title string
	body  string
}

type fakeNotifier struct {
	feed    []sentNotification
	direct  []sentNotification
	delayed []sentNotification
}

func (f *fakeNotifier) Send(title, body string, _ domain.NotificationCategory) {
	f.feed = append(f.feed, sentNotification{title: title, body: body})
}

func (f *fakeNotifier) SendTo(phone, title, body string, _ domain.NotificationCategory) {
	f.direct = append(f.direct, sentNotification{phone: phone, title: title, body: body})
}

func (f *fakeNotifier) SendToAfter(_ time.Duration, phone, title, body string, _ domain.NotificationCategory) {
	f.delayed = append(f.delayed, sentNotification{phone: phone, title: title, body: body})
}

type nopSpeaker struct{}

func (nopSpeaker) Speak(string) {}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(state *fakeState, notif *fakeNotifier) *Service {
	return NewService(state, state, state, state, notif, nopSpeaker{}, nopLogger{}, time.Minute)
}

func seedAppointment(state *fakeState, status domain.AppointmentStatus) domain.Appointment {
	app := domain.Appointment{
		ID:            "app-1",
		ServiceID:     "escova",
		ClientName:    "Maria Silva",
		ClientPhone:   "11999990000",
		Date:          "2025-03-11",
		Time:          types.TimeString("10:00"),
		Status:        status,
		PaymentStatus: domain.PaymentUnpaid,
	}
	state.SaveAppointment(app)
	return app
}

func TestService_Confirm(t *testing.T) {
	t.Run("pending confirms and notifies client once", func(t *testing.T) {
		state := newFakeState()
		notif := &fakeNotifier{}
		svc := newTestService(state, notif)
		seedAppointment(state, domain.StatusPending)

		app, err := svc.Confirm("app-1")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, app.Status)

		require.Len(t, notif.direct, 1)
		assert.Equal(t, "11999990000", notif.direct[0].phone)
		assert.Equal(t, "Horário Confirmado! 💖", notif.direct[0].title)
		assert.Contains(t, notif.direct[0].body, "11/03/2025")
		assert.Contains(t, notif.direct[0].body, "Escova Modelada")
	})

	t.Run("declining a cancellation request does not resend confirmation", func(t *testing.T) {
		state := newFakeState()
		notif := &fakeNotifier{}
		svc := newTestService(state, notif)
		seedAppointment(state, domain.StatusRequestCancellation)

		app, err := svc.Confirm("app-1")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, app.Status)

		require.Len(t, notif.direct, 1)
		assert.Equal(t, "Cancelamento Não Aprovado", notif.direct[0].title)
	})

	t.Run("invalid transition", func(t *testing.T) {
		state := newFakeState()
		svc := newTestService(state, &fakeNotifier{})
		seedAppointment(state, domain.StatusCompleted)

		_, err := svc.Confirm("app-1")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("not found", func(t *testing.T) {
		svc := newTestService(newFakeState(), &fakeNotifier{})
		_, err := svc.Confirm("ghost")
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestService_Cancel(t *testing.T) {
	t.Run("client cancels own appointment", func(t *testing.T) {
		state := newFakeState()
		notif := &fakeNotifier{}
		svc := newTestService(state, notif)
		seedAppointment(state, domain.StatusPending)

		app, err := svc.Cancel("app-1", "11999990000", false)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelled, app.Status)
		require.Len(t, notif.feed, 1)
	})

	t.Run("client cannot cancel someone else's appointment", func(t *testing.T) {
		state := newFakeState()
		svc := newTestService(state, &fakeNotifier{})
		seedAppointment(state, domain.StatusPending)

		_, err := svc.Cancel("app-1", "11888880000", false)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("operator approves cancellation request", func(t *testing.T) {
		state := newFakeState()
		notif := &fakeNotifier{}
		svc := newTestService(state, notif)
		seedAppointment(state, domain.StatusRequestCancellation)

		app, err := svc.Cancel("app-1", "", true)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelled, app.Status)
		require.Len(t, notif.direct, 1)
		assert.Equal(t, "Horário Cancelado", notif.direct[0].title)
	})

	t.Run("terminal appointment stays untouched", func(t *testing.T) {
		state := newFakeState()
		svc := newTestService(state, &fakeNotifier{})
		before := seedAppointment(state, domain.StatusCancelled)

		_, err := svc.Cancel("app-1", "", true)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		after, _ := state.AppointmentByID("app-1")
		assert.Equal(t, before, after)
	})
}

func TestService_RequestCancellation(t *testing.T) {
	state := newFakeState()
	notif := &fakeNotifier{}
	svc := newTestService(state, notif)
	seedAppointment(state, domain.StatusConfirmed)

	app, err := svc.RequestCancellation("app-1", "11999990000")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRequestCancellation, app.Status)
	require.Len(t, notif.feed, 1)
	assert.Equal(t, "Pedido de Cancelamento ⚠️", notif.feed[0].title)

	// из pending запрос отмены недоступен
	state.SaveAppointment(domain.Appointment{ID: "app-2", ClientPhone: "11999990000", Status: domain.StatusPending})
	_, err = svc.RequestCancellation("app-2", "11999990000")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_CheckIn(t *testing.T) {
	t.Run("atomic status change with notifications", func(t *testing.T) {
		state := newFakeState()
		notif := &fakeNotifier{}
		svc := newTestService(state, notif)
		seedAppointment(state, domain.StatusConfirmed)

		app, err := svc.CheckIn("app-1", "11999990000", "selfie.jpg", nil)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusInService, app.Status)
		assert.Equal(t, domain.CheckInCheckedIn, app.CheckInStatus)
		assert.Equal(t, "selfie.jpg", app.CheckInPhoto)

		require.Len(t, notif.feed, 1)
		assert.Equal(t, "Cliente no Estúdio 📍", notif.feed[0].title)

		require.Len(t, notif.delayed, 1)
		assert.Contains(t, notif.delayed[0].body, "Ivone Hair Studio")
	})

	t.Run("preferences saved to profile", func(t *testing.T) {
		state := newFakeState()
		svc := newTestService(state, &fakeNotifier{})
		seedAppointment(state, domain.StatusConfirmed)
		state.SaveUser(domain.User{ID: "11999990000", Phone: "11999990000", Name: "Maria Silva"})

		prefs := &domain.ClientPreferences{Environment: "zen", SaveToProfile: true}
		_, err := svc.CheckIn("app-1", "11999990000", "", prefs)
		require.NoError(t, err)

		user, _ := state.UserByPhone("11999990000")
		require.NotNil(t, user.PermanentPreferences)
		assert.Equal(t, "zen", user.PermanentPreferences.Environment)
		assert.False(t, user.PermanentPreferences.SaveToProfile)
	})

	t.Run("double check-in rejected", func(t *testing.T) {
		state := newFakeState()
		svc := newTestService(state, &fakeNotifier{})
		seedAppointment(state, domain.StatusConfirmed)

		_, err := svc.CheckIn("app-1", "11999990000", "", nil)
		require.NoError(t, err)

		_, err = svc.CheckIn("app-1", "11999990000", "", nil)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestService_Complete(t *testing.T) {
	state := newFakeState()
	notif := &fakeNotifier{}
	svc := newTestService(state, notif)
	seedAppointment(state, domain.StatusInService)

	app, err := svc.Complete("app-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, app.Status)

	// повторное завершение — no-op
	again, err := svc.Complete("app-1")
	require.NoError(t, err)
	assert.Equal(t, app, again)
	assert.Empty(t, notif.feed)
	assert.Empty(t, notif.direct)

	// из confirmed завершить нельзя
	state.SaveAppointment(domain.Appointment{ID: "app-2", Status: domain.StatusConfirmed})
	_, err = svc.Complete("app-2")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_Pay(t *testing.T) {
	state := newFakeState()
	notif := &fakeNotifier{}
	svc := newTestService(state, notif)
	seedAppointment(state, domain.StatusInService)

	app, err := svc.Pay("app-1", "11999990000", "pix")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentWaitingVerification, app.PaymentStatus)
	assert.Equal(t, "pix", app.PaymentMethod)
	require.Len(t, notif.feed, 1)
	assert.Equal(t, "Pagamento Enviado 💸", notif.feed[0].title)

	// повторная отметка в ожидании проверки — no-op
	again, err := svc.Pay("app-1", "11999990000", "pix")
	require.NoError(t, err)
	assert.Equal(t, app, again)
	assert.Len(t, notif.feed, 1)
}

func TestService_ConfirmPayment(t *testing.T) {
	t.Run("bundles completion from in_service", func(t *testing.T) {
		state := newFakeState()
		notif := &fakeNotifier{}
		svc := newTestService(state, notif)
		seedAppointment(state, domain.StatusInService)

		app, err := svc.ConfirmPayment("app-1")
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentPaid, app.PaymentStatus)
		assert.Equal(t, domain.StatusCompleted, app.Status)

		require.Len(t, notif.direct, 1)
		assert.Equal(t, "Pagamento Confirmado ✨", notif.direct[0].title)
	})

	t.Run("idempotent", func(t *testing.T) {
		state := newFakeState()
		notif := &fakeNotifier{}
		svc := newTestService(state, notif)
		seedAppointment(state, domain.StatusInService)

		first, err := svc.ConfirmPayment("app-1")
		require.NoError(t, err)

		second, err := svc.ConfirmPayment("app-1")
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Len(t, notif.direct, 1)
	})

	t.Run("cancelled appointment rejected", func(t *testing.T) {
		state := newFakeState()
		svc := newTestService(state, &fakeNotifier{})
		seedAppointment(state, domain.StatusCancelled)

		_, err := svc.ConfirmPayment("app-1")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestService_Rate(t *testing.T) {
	t.Run("rates completed appointment once", func(t *testing.T) {
		state := newFakeState()
		svc := newTestService(state, &fakeNotifier{})
		seedAppointment(state, domain.StatusCompleted)

		app, err := svc.Rate("app-1", "11999990000", 5, "Adorei!")
		require.NoError(t, err)
		assert.Equal(t, 5, app.Rating)
		assert.Equal(t, "Adorei!", app.ReviewComment)

		_, err = svc.Rate("app-1", "11999990000", 4, "")
		assert.ErrorIs(t, err, ErrAlreadyRated)
	})

	t.Run("dismissal stored without comment", func(t *testing.T) {
		state := newFakeState()
		svc := newTestService(state, &fakeNotifier{})
		seedAppointment(state, domain.StatusCompleted)

		app, err := svc.Rate("app-1", "11999990000", domain.RatingDismissed, "ignorado")
		require.NoError(t, err)
		assert.Equal(t, domain.RatingDismissed, app.Rating)
		assert.Empty(t, app.ReviewComment)
	})

	t.Run("out of range rating", func(t *testing.T) {
		state := newFakeState()
		svc := newTestService(state, &fakeNotifier{})
		seedAppointment(state, domain.StatusCompleted)

		for _, rating := range []int{0, 6, -2} {
			_, err := svc.Rate("app-1", "11999990000", rating, "")
			assert.ErrorIs(t, err, ErrInvalidRating, "rating %d", rating)
		}
	})

	t.Run("only completed can be rated", func(t *testing.T) {
		state := newFakeState()
		svc := newTestService(state, &fakeNotifier{})
		seedAppointment(state, domain.StatusInService)

		_, err := svc.Rate("app-1", "11999990000", 5, "")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}
