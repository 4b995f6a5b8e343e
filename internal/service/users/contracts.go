package users

import "github.com/ivonestudio/studio-service/internal/domain"

// UserStore интерфейс состояния клиенток
type UserStore interface {
	UserByPhone(phone string) (domain.User, bool)
	UserByReferralCode(code string) (domain.User, bool)
	SaveUser(user domain.User)
	DeleteUser(phone string) bool
}

// Speaker опциональный хук озвучивания
type Speaker interface {
	Speak(text string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
