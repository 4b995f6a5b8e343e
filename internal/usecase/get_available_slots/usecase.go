package get_available_slots

import (
	"fmt"
	"time"

	"github.com/ivonestudio/studio-service/internal/domain"
	"github.com/ivonestudio/studio-service/pkg/types"
)

// UseCase сценарий выдачи сетки слотов на дату
type UseCase struct {
	cfg ConfigStore
	log Logger
}

// NewUseCase создает новый экземпляр UseCase
func NewUseCase(cfg ConfigStore, log Logger) *UseCase {
	return &UseCase{
		cfg: cfg,
		log: log,
	}
}

// Request запрос сетки слотов
type Request struct {
	Date string // "2006-01-02"
}

// Response сетка слотов на дату
type Response struct {
	Date  string             `json:"date"`
	Slots []types.TimeString `json:"slots"`
}

// Handle возвращает сетку слотов на дату. Нерабочий день — ошибка
// ErrDateNotAllowed, а не пустой список: вызывающая сторона показывает
// блокирующее сообщение.
func (u *UseCase) Handle(req Request) (Response, error) {
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return Response{}, fmt.Errorf("%w: %q is not in format %s", ErrInvalidDate, req.Date, domain.DateFormat)
	}

	hours := u.cfg.SalonConfig().BusinessHours
	if !hours.AllowsDate(req.Date) {
		u.log.Info("[Handle] date %s outside business days", req.Date)
		return Response{}, fmt.Errorf("%w: %s", ErrDateNotAllowed, req.Date)
	}

	return Response{
		Date:  req.Date,
		Slots: hours.Slots(),
	}, nil
}
