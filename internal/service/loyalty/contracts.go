package loyalty

import "github.com/ivonestudio/studio-service/internal/domain"

// UserStore интерфейс состояния клиенток
type UserStore interface {
	UserByPhone(phone string) (domain.User, bool)
	SaveUser(user domain.User)
}

// VoucherStore интерфейс состояния ваучеров
type VoucherStore interface {
	VoucherByID(id string) (domain.Voucher, bool)
	SaveVoucher(voucher domain.Voucher)
}

// ConfigStore интерфейс конфигурации салона
type ConfigStore interface {
	SalonConfig() domain.SalonConfig
}

// Notifier диспетчер уведомлений
type Notifier interface {
	Send(title, body string, category domain.NotificationCategory)
	SendTo(phone, title, body string, category domain.NotificationCategory)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
