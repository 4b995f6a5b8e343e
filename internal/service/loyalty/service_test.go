package loyalty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivonestudio/studio-service/internal/domain"
)

type fakeState struct {
	users    map[string]domain.User
	vouchers map[string]domain.Voucher
	cfg      domain.SalonConfig
}

func newFakeState() *fakeState {
	return &fakeState{
		users:    make(map[string]domain.User),
		vouchers: make(map[string]domain.Voucher),
		cfg:      domain.DefaultSalonConfig(),
	}
}

func (f *fakeState) UserByPhone(phone string) (domain.User, bool) {
	user, ok := f.users[phone]
	return user, ok
}

func (f *fakeState) SaveUser(user domain.User) { f.users[user.Phone] = user }

func (f *fakeState) VoucherByID(id string) (domain.Voucher, bool) {
	voucher, ok := f.vouchers[id]
	return voucher, ok
}

func (f *fakeState) SaveVoucher(voucher domain.Voucher) { f.vouchers[voucher.ID] = voucher }

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

func newTestService(state *fakeState, notif *fakeNotifier) *Service {
	return NewService(state, state, state, notif, nopLogger{})
}

func TestService_UpdateUserPoints(t *testing.T) {
	state := newFakeState()
	svc := newTestService(state, &fakeNotifier{})
	state.SaveUser(domain.User{ID: "11999990000", Phone: "11999990000"})

	user, err := svc.UpdateUserPoints("11999990000", domain.UserPoints{Escovas: 3, ManicurePedicure: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, user.Points.Escovas)
	assert.Equal(t, 1, user.Points.ManicurePedicure)

	_, err = svc.UpdateUserPoints("11999990000", domain.UserPoints{Escovas: -1})
	assert.ErrorIs(t, err, ErrInvalidPoints)

	_, err = svc.UpdateUserPoints("11000000000", domain.UserPoints{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_Progress(t *testing.T) {
	state := newFakeState()
	svc := newTestService(state, &fakeNotifier{})
	state.SaveUser(domain.User{
		ID:     "11999990000",
		Phone:  "11999990000",
		Points: domain.UserPoints{Escovas: 100},
	})

	progress, err := svc.Progress("11999990000")
	require.NoError(t, err)
	require.Len(t, progress, len(state.cfg.LoyaltyClub.Cards))

	for _, p := range progress {
		assert.LessOrEqual(t, p.Percent, 100, "card %s", p.Card.ID)
		if p.Card.Category == domain.CategoryEscovas {
			// цель перевыполнена, но процент ограничен сотней
			assert.Equal(t, 100, p.Percent)
			assert.Equal(t, 100, p.Current)
		}
	}
}

func TestService_ConvertReferral(t *testing.T) {
	state := newFakeState()
	notif := &fakeNotifier{}
	svc := newTestService(state, notif)
	state.SaveUser(domain.User{
		ID:    "11999990000",
		Phone: "11999990000",
		Referrals: []domain.ReferralEntry{
			{FriendName: "Clara", Status: domain.ReferralJoined},
		},
	})

	user, err := svc.ConvertReferral("11999990000", "Clara")
	require.NoError(t, err)
	assert.Equal(t, domain.ReferralConverted, user.Referrals[0].Status)
	require.Len(t, notif.direct, 1)

	// переход односторонний: повторная конвертация ничего не откатывает
	user, err = svc.ConvertReferral("11999990000", "Clara")
	require.NoError(t, err)
	assert.Equal(t, domain.ReferralConverted, user.Referrals[0].Status)

	_, err = svc.ConvertReferral("11999990000", "Desconhecida")
	assert.ErrorIs(t, err, ErrReferralNotFound)
}

func TestService_RedeemVoucher(t *testing.T) {
	state := newFakeState()
	notif := &fakeNotifier{}
	svc := newTestService(state, notif)
	state.SaveVoucher(domain.Voucher{ID: "v1", Name: "Escova Grátis", Limit: 2, Redeemed: 2})

	// лимит информационный: погашение сверх лимита не блокируется
	voucher, err := svc.RedeemVoucher("v1")
	require.NoError(t, err)
	assert.Equal(t, 3, voucher.Redeemed)

	require.Len(t, notif.feed, 1)
	assert.Equal(t, "Voucher Confirmado!", notif.feed[0])

	_, err = svc.RedeemVoucher("ghost")
	assert.ErrorIs(t, err, ErrVoucherNotFound)
}
