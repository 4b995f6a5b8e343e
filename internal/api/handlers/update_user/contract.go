package update_user

import (
	"github.com/ivonestudio/studio-service/internal/domain"
	"github.com/ivonestudio/studio-service/internal/service/users"
)

// UserService сервис учётных записей
type UserService interface {
	AcceptTerms(phone string) (domain.User, error)
	UpdateProfile(phone string, req users.UpdateProfileRequest) (domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
