package cancel_appointment

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
	msgTransition   = "Este agendamento não pode ser cancelado no estado atual."
	msgInternal     = "Algo deu errado. Tente novamente em instantes."
)

// AppointmentService сервис жизненного цикла записей
type AppointmentService interface {
	Cancel(id, actorPhone string, byOperator bool) (domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

// Handler обработчик отмены записи
type Handler struct {
	service AppointmentService
	log     Logger
}

// NewHandler создает новый экземпляр Handler
func NewHandler(service AppointmentService, log Logger) *Handler {
	return &Handler{service: service, log: log}
}

// Handle POST /api/v1/appointments/{id}/cancel — отмена клиенткой
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, middleware.UserPhone(r), false)
}

// HandleOperator POST /api/v1/admin/appointments/{id}/cancel
func (h *Handler) HandleOperator(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "", true)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, phone string, byOperator bool) {
	app, err := h.service.Cancel(mux.Vars(r)["id"], phone, byOperator)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			handlers.RespondError(w, http.StatusNotFound, msgNotFound)
		case errors.Is(err, appointments.ErrAccessDenied):
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)
		case errors.Is(err, appointments.ErrInvalidTransition):
			handlers.RespondError(w, http.StatusConflict, msgTransition)
		default:
			h.log.Error("[handle] cancel appointment: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, app)
}
