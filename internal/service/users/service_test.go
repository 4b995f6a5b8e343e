package users

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivonestudio/studio-service/internal/domain"
)

type fakeUserStore struct {
	users map[string]domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]domain.User)}
}

func (f *fakeUserStore) UserByPhone(phone string) (domain.User, bool) {
	user, ok := f.users[phone]
	return user, ok
}

func (f *fakeUserStore) UserByReferralCode(code string) (domain.User, bool) {
	for _, user := range f.users {
		if user.ReferralCode == code {
			return user, true
		}
	}
	return domain.User{}, false
}

func (f *fakeUserStore) SaveUser(user domain.User) { f.users[user.Phone] = user }

func (f *fakeUserStore) DeleteUser(phone string) bool {
	if _, ok := f.users[phone]; !ok {
		return false
	}
	delete(f.users, phone)
	return true
}

type nopSpeaker struct{}

func (nopSpeaker) Speak(string) {}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(store *fakeUserStore) *Service {
	return NewService(store, nopSpeaker{}, nopLogger{})
}

func TestService_Login(t *testing.T) {
	t.Run("first login creates user with referral code", func(t *testing.T) {
		store := newFakeUserStore()
		svc := newTestService(store)

		user, err := svc.Login(LoginRequest{Name: "Maria Silva", Phone: "(11) 99999-0000"})
		require.NoError(t, err)

		assert.Equal(t, "11999990000", user.Phone)
		assert.Equal(t, user.Phone, user.ID)
		assert.True(t, strings.HasPrefix(user.ReferralCode, domain.ReferralCodePrefix))
		assert.Len(t, user.ReferralCode, len(domain.ReferralCodePrefix)+domain.ReferralCodeSuffixLength)
		assert.NotNil(t, user.Referrals)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("repeat login keeps referral code", func(t *testing.T) {
		store := newFakeUserStore()
		svc := newTestService(store)

		first, err := svc.Login(LoginRequest{Name: "Maria", Phone: "11999990000"})
		require.NoError(t, err)

		second, err := svc.Login(LoginRequest{Name: "Maria Silva", Phone: "11999990000"})
		require.NoError(t, err)

		assert.Equal(t, first.ReferralCode, second.ReferralCode)
		assert.Equal(t, "Maria Silva", second.Name)
	})

	t.Run("referral code links friend to referrer", func(t *testing.T) {
		store := newFakeUserStore()
		svc := newTestService(store)

		referrer, err := svc.Login(LoginRequest{Name: "Ana", Phone: "11988880000"})
		require.NoError(t, err)

		friend, err := svc.Login(LoginRequest{
			Name:         "Clara",
			Phone:        "11977770000",
			ReferralCode: referrer.ReferralCode,
		})
		require.NoError(t, err)
		assert.Equal(t, referrer.Phone, friend.ReferredBy)

		updated, _ := store.UserByPhone(referrer.Phone)
		require.Len(t, updated.Referrals, 1)
		assert.Equal(t, "Clara", updated.Referrals[0].FriendName)
		assert.Equal(t, domain.ReferralJoined, updated.Referrals[0].Status)
	})

	t.Run("unknown referral code ignored", func(t *testing.T) {
		store := newFakeUserStore()
		svc := newTestService(store)

		user, err := svc.Login(LoginRequest{Name: "Clara", Phone: "11977770000", ReferralCode: "IVONE-XXXXX"})
		require.NoError(t, err)
		assert.Empty(t, user.ReferredBy)
	})

	t.Run("missing required fields", func(t *testing.T) {
		svc := newTestService(newFakeUserStore())

		_, err := svc.Login(LoginRequest{Name: "", Phone: "11999990000"})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.Login(LoginRequest{Name: "Maria", Phone: "   "})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_AcceptTerms(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestService(store)

	_, err := svc.Login(LoginRequest{Name: "Maria", Phone: "11999990000"})
	require.NoError(t, err)

	user, err := svc.AcceptTerms("11999990000")
	require.NoError(t, err)
	assert.True(t, user.TermsAccepted)

	_, err = svc.AcceptTerms("11000000000")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_UpdateProfile(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestService(store)

	_, err := svc.Login(LoginRequest{Name: "Maria", Phone: "11999990000"})
	require.NoError(t, err)

	name := "Maria Oliveira"
	prefs := domain.ClientPreferences{Environment: "papo", SaveToProfile: true}
	user, err := svc.UpdateProfile("11999990000", UpdateProfileRequest{
		Name:                 &name,
		PermanentPreferences: &prefs,
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria Oliveira", user.Name)
	require.NotNil(t, user.PermanentPreferences)
	assert.False(t, user.PermanentPreferences.SaveToProfile)

	empty := "  "
	_, err = svc.UpdateProfile("11999990000", UpdateProfileRequest{Name: &empty})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Delete(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestService(store)

	_, err := svc.Login(LoginRequest{Name: "Maria", Phone: "11999990000"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete("(11) 99999-0000"))
	_, ok := store.UserByPhone("11999990000")
	assert.False(t, ok)

	assert.ErrorIs(t, svc.Delete("11999990000"), ErrUserNotFound)
}
