package request_cancellation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ivonestudio/studio-service/internal/api/handlers"
	"github.com/ivonestudio/studio-service/internal/api/middleware"
	"github.com/ivonestudio/studio-service/internal/domain"
	"github.com/ivonestudio/studio-service/internal/service/appointments"
)

const (
	msgNotFound     = "Agendamento não encontrado."
	msgAccessDenied = "Este agendamento pertence a outra cliente."
	msgTransition   = "O pedido de cancelamento só vale para horários confirmados."
	msgInternal     = "Algo deu errado. Tente novamente em instantes."
)

// AppointmentService сервис жизненного цикла записей
type AppointmentService interface {
	RequestCancellation(id, actorPhone string) (domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

// Handler обработчик запроса отмены подтвержденной записи
type Handler struct {
	service AppointmentService
	log     Logger
}

// NewHandler создает новый экземпляр Handler
func NewHandler(service AppointmentService, log Logger) *Handler {
	return &Handler{service: service, log: log}
}

// Handle POST /api/v1/appointments/{id}/request-cancellation
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	app, err := h.service.RequestCancellation(mux.Vars(r)["id"], middleware.UserPhone(r))
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			handlers.RespondError(w, http.StatusNotFound, msgNotFound)
		case errors.Is(err, appointments.ErrAccessDenied):
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)
		case errors.Is(err, appointments.ErrInvalidTransition):
			handlers.RespondError(w, http.StatusConflict, msgTransition)
		default:
			h.log.Error("[Handle] request cancellation: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, app)
}
