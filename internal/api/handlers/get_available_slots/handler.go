package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/ivonestudio/studio-service/internal/api/handlers"
	usecase "github.com/ivonestudio/studio-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate    = "Informe uma data válida."
	msgDateNotAllowed = "O estúdio não abre neste dia."
	msgInternal       = "Algo deu errado. Tente novamente em instantes."
)

// SlotsUseCase сценарий выдачи сетки слотов
type SlotsUseCase interface {
	Handle(req usecase.Request) (usecase.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

// Handler обработчик запроса сетки слотов
type Handler struct {
	usecase SlotsUseCase
	log     Logger
}

// NewHandler создает новый экземпляр Handler
func NewHandler(usecase SlotsUseCase, log Logger) *Handler {
	return &Handler{usecase: usecase, log: log}
}

// Handle GET /api/v1/slots?date=2006-01-02
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp, err := h.usecase.Handle(usecase.Request{Date: r.URL.Query().Get("date")})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDate):
			handlers.RespondError(w, http.StatusBadRequest, msgInvalidDate)
		case errors.Is(err, usecase.ErrDateNotAllowed):
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgDateNotAllowed)
		default:
			h.log.Error("[Handle] get slots: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
