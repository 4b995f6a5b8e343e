package notifier

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ivonestudio/studio-service/internal/domain"
)

// Sender best-effort внешний канал доставки (WhatsApp). Опционален.
type Sender interface {
	SendMessage(to, body string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Dispatcher диспетчер уведомлений. Fire-and-forget: отправка никогда
// не ожидается и не подтверждается, сбой доставки не влияет на ядро.
// Лента уведомлений живёт в памяти сессии.
type Dispatcher struct {
	log    Logger
	sender Sender

	mu   sync.Mutex
	feed []domain.Notification
}

// New создает диспетчер уведомлений. sender может быть nil —
// тогда уведомления попадают только в ленту.
func New(log Logger, sender Sender) *Dispatcher {
	return &Dispatcher{log: log, sender: sender}
}

// Send публикует уведомление в ленту
func (d *Dispatcher) Send(title, body string, category domain.NotificationCategory) {
	n := domain.Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Body:      body,
		Category:  category,
		Timestamp: time.Now(),
	}

	d.mu.Lock()
	d.feed = append([]domain.Notification{n}, d.feed...)
	d.mu.Unlock()

	d.log.Info("Notification sent: category=%s, title=%q", category, title)
}

// SendTo публикует уведомление в ленту и пытается доставить его клиентке
// во внешний канал. Доставка уходит в фоне и не подтверждается.
func (d *Dispatcher) SendTo(phone, title, body string, category domain.NotificationCategory) {
	d.Send(title, body, category)

	if d.sender == nil || phone == "" {
		return
	}

	go func() {
		if err := d.sender.SendMessage(phone, fmt.Sprintf("%s\n%s", title, body)); err != nil {
			d.log.Warn("Notification delivery failed (best-effort): %v", err)
		}
	}()
}

// SendToAfter публикует уведомление с задержкой. Таймер не персистентен:
// завершение процесса до срабатывания молча теряет сообщение —
// задокументированное, а не случайное поведение.
func (d *Dispatcher) SendToAfter(delay time.Duration, phone, title, body string, category domain.NotificationCategory) {
	time.AfterFunc(delay, func() {
		d.SendTo(phone, title, body, category)
	})
}

// Feed возвращает копию ленты уведомлений (новые первыми)
func (d *Dispatcher) Feed() []domain.Notification {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]domain.Notification, len(d.feed))
	copy(out, d.feed)
	return out
}

// MarkAllRead помечает все уведомления ленты прочитанными
func (d *Dispatcher) MarkAllRead() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.feed {
		d.feed[i].Read = true
	}
}

// Delete удаляет уведомление из ленты
func (d *Dispatcher) Delete(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, n := range d.feed {
		if n.ID == id {
			d.feed = append(d.feed[:i], d.feed[i+1:]...)
			return
		}
	}
}
