package create_booking

import "github.com/ivonestudio/studio-service/internal/usecase/create_booking"

// BookingUseCase сценарий создания записи
type BookingUseCase interface {
	Handle(req create_booking.Request) (create_booking.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
