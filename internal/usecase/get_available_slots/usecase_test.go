package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivonestudio/studio-service/internal/domain"
)

type fakeConfig struct {
	cfg domain.SalonConfig
}

func (f *fakeConfig) SalonConfig() domain.SalonConfig { return f.cfg }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestUseCase_Handle(t *testing.T) {
	uc := NewUseCase(&fakeConfig{cfg: domain.DefaultSalonConfig()}, nopLogger{})

	t.Run("working day returns grid", func(t *testing.T) {
		resp, err := uc.Handle(Request{Date: "2025-03-11"}) // вторник
		require.NoError(t, err)
		assert.Equal(t, "2025-03-11", resp.Date)
		assert.NotEmpty(t, resp.Slots)
		assert.Equal(t, "09:00", resp.Slots[0].String())
	})

	t.Run("closed day", func(t *testing.T) {
		_, err := uc.Handle(Request{Date: "2025-03-09"}) // воскресенье
		assert.ErrorIs(t, err, ErrDateNotAllowed)
	})

	t.Run("invalid date", func(t *testing.T) {
		for _, date := range []string{"", "11/03/2025", "amanhã"} {
			_, err := uc.Handle(Request{Date: date})
			assert.ErrorIs(t, err, ErrInvalidDate, "date %q", date)
		}
	})

	t.Run("malformed hours fall back to default ladder", func(t *testing.T) {
		cfg := domain.DefaultSalonConfig()
		cfg.BusinessHours.Start = "late"
		broken := NewUseCase(&fakeConfig{cfg: cfg}, nopLogger{})

		resp, err := broken.Handle(Request{Date: "2025-03-11"})
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultSlotLadder, resp.Slots)
	})
}
