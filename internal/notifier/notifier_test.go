package notifier

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivonestudio/studio-service/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type recordingSender struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (s *recordingSender) SendMessage(to, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, to)
	return s.err
}

func (s *recordingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func TestDispatcher_Send(t *testing.T) {
	d := New(nopLogger{}, nil)

	d.Send("Primeiro", "corpo", domain.NotifySchedule)
	d.Send("Segundo", "corpo", domain.NotifyPromo)

	feed := d.Feed()
	require.Len(t, feed, 2)

	// новые уведомления первыми
	assert.Equal(t, "Segundo", feed[0].Title)
	assert.Equal(t, "Primeiro", feed[1].Title)
	assert.NotEqual(t, feed[0].ID, feed[1].ID)
	assert.False(t, feed[0].Read)
}

func TestDispatcher_SendTo(t *testing.T) {
	t.Run("delivers via sender", func(t *testing.T) {
		sender := &recordingSender{}
		d := New(nopLogger{}, sender)

		d.SendTo("11999990000", "Oi", "corpo", domain.NotifySchedule)

		require.Eventually(t, func() bool { return sender.count() == 1 }, time.Second, 10*time.Millisecond)
		assert.Len(t, d.Feed(), 1)
	})

	t.Run("sender failure does not reach the feed", func(t *testing.T) {
		sender := &recordingSender{err: errors.New("twilio down")}
		d := New(nopLogger{}, sender)

		d.SendTo("11999990000", "Oi", "corpo", domain.NotifySchedule)

		require.Eventually(t, func() bool { return sender.count() == 1 }, time.Second, 10*time.Millisecond)
		assert.Len(t, d.Feed(), 1)
	})

	t.Run("nil sender keeps feed only", func(t *testing.T) {
		d := New(nopLogger{}, nil)
		d.SendTo("11999990000", "Oi", "corpo", domain.NotifySchedule)
		assert.Len(t, d.Feed(), 1)
	})
}

func TestDispatcher_SendToAfter(t *testing.T) {
	d := New(nopLogger{}, nil)

	d.SendToAfter(20*time.Millisecond, "11999990000", "Depois", "corpo", domain.NotifySchedule)
	assert.Empty(t, d.Feed())

	require.Eventually(t, func() bool { return len(d.Feed()) == 1 }, time.Second, 10*time.Millisecond)
}

func TestDispatcher_FeedManagement(t *testing.T) {
	d := New(nopLogger{}, nil)
	d.Send("Um", "corpo", domain.NotifyNews)
	d.Send("Dois", "corpo", domain.NotifyNews)

	d.MarkAllRead()
	for _, n := range d.Feed() {
		assert.True(t, n.Read)
	}

	id := d.Feed()[0].ID
	d.Delete(id)
	feed := d.Feed()
	require.Len(t, feed, 1)
	assert.NotEqual(t, id, feed[0].ID)

	// удаление неизвестного id — no-op
	d.Delete("ghost")
	assert.Len(t, d.Feed(), 1)
}
