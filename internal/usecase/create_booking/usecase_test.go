package create_booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivonestudio/studio-service/internal/domain"
)

type fakeState struct {
	saved []domain.Appointment
	cfg   domain.SalonConfig
}

func newFakeState() *fakeState {
	return &fakeState{cfg: domain.DefaultSalonConfig()}
}

func (f *fakeState) SaveAppointment(app domain.Appointment) { f.saved = append(f.saved, app) }

func (f *fakeState) ServiceByID(id string) (domain.Service, bool) {
	if id == "escova" {
		return domain.Service{ID: "escova", Name: "Escova Modelada"}, true
	}
	return domain.Service{}, false
}

func (f *fakeState) SalonConfig() domain.SalonConfig { return f.cfg }

type fakeNotifier struct {
	feed   []string
	direct []string
}

func (f *fakeNotifier) Send(title, _ string, _ domain.NotificationCategory) {
	f.feed = append(f.feed, title)
}

func (f *fakeNotifier) SendTo(_, title, _ string, _ domain.NotificationCategory) {
	f.direct = append(f.direct, title)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() Request {
	return Request{
		ServiceID:   "escova",
		ClientName:  "Maria Silva",
		ClientPhone: "(11) 99999-0000",
		Date:        "2025-03-11", // вторник
		Time:        "10:00",
	}
}

func TestUseCase_Handle(t *testing.T) {
	t.Run("client booking starts pending and notifies operator", func(t *testing.T) {
		state := newFakeState()
		notif := &fakeNotifier{}
		uc := NewUseCase(state, state, state, notif, nopLogger{})

		resp, err := uc.Handle(validRequest())
		require.NoError(t, err)

		app := resp.Appointment
		assert.NotEmpty(t, app.ID)
		assert.Equal(t, domain.StatusPending, app.Status)
		assert.Equal(t, domain.PaymentUnpaid, app.PaymentStatus)
		assert.Equal(t, "11999990000", app.ClientPhone)
		assert.False(t, app.CreatedAt.IsZero())

		require.Len(t, state.saved, 1)
		require.Len(t, notif.feed, 1)
		assert.Equal(t, "Novo Agendamento Recebido ✨", notif.feed[0])
		assert.Empty(t, notif.direct)
	})

	t.Run("operator booking skips pending and notifies client", func(t *testing.T) {
		state := newFakeState()
		notif := &fakeNotifier{}
		uc := NewUseCase(state, state, state, notif, nopLogger{})

		req := validRequest()
		req.ByOperator = true

		resp, err := uc.Handle(req)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, resp.Appointment.Status)

		require.Len(t, notif.direct, 1)
		assert.Equal(t, "Horário Confirmado! 💖", notif.direct[0])
		assert.Empty(t, notif.feed)
	})

	t.Run("missing fields rejected before touching state", func(t *testing.T) {
		state := newFakeState()
		uc := NewUseCase(state, state, state, &fakeNotifier{}, nopLogger{})

		for _, mutate := range []func(*Request){
			func(r *Request) { r.ClientName = "" },
			func(r *Request) { r.ClientPhone = "abc" },
			func(r *Request) { r.ServiceID = "" },
			func(r *Request) { r.Date = "11/03/2025" },
			func(r *Request) { r.Time = "10h" },
		} {
			req := validRequest()
			mutate(&req)
			_, err := uc.Handle(req)
			assert.ErrorIs(t, err, ErrValidation)
		}

		assert.Empty(t, state.saved)
	})

	t.Run("unknown service", func(t *testing.T) {
		state := newFakeState()
		uc := NewUseCase(state, state, state, &fakeNotifier{}, nopLogger{})

		req := validRequest()
		req.ServiceID = "ghost"
		_, err := uc.Handle(req)
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("closed day rejected", func(t *testing.T) {
		state := newFakeState()
		uc := NewUseCase(state, state, state, &fakeNotifier{}, nopLogger{})

		req := validRequest()
		req.Date = "2025-03-09" // воскресенье
		_, err := uc.Handle(req)
		assert.ErrorIs(t, err, ErrDateNotAllowed)
	})

	t.Run("off-grid slot rejected", func(t *testing.T) {
		state := newFakeState()
		uc := NewUseCase(state, state, state, &fakeNotifier{}, nopLogger{})

		req := validRequest()
		req.Time = "12:00" // перерыв
		_, err := uc.Handle(req)
		assert.ErrorIs(t, err, ErrSlotNotAllowed)

		req.Time = "10:15"
		_, err = uc.Handle(req)
		assert.ErrorIs(t, err, ErrSlotNotAllowed)
	})

	t.Run("no double-booking guard", func(t *testing.T) {
		state := newFakeState()
		uc := NewUseCase(state, state, state, &fakeNotifier{}, nopLogger{})

		_, err := uc.Handle(validRequest())
		require.NoError(t, err)
		_, err = uc.Handle(validRequest())
		require.NoError(t, err)

		require.Len(t, state.saved, 2)
		assert.NotEqual(t, state.saved[0].ID, state.saved[1].ID)
	})
}
