package confirm_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ivonestudio/studio-service/internal/api/handlers"
	"github.com/ivonestudio/studio-service/internal/domain"
	"github.com/ivonestudio/studio-service/internal/service/appointments"
)

const (
	msgNotFound   = "Agendamento não encontrado."
	msgTransition = "Este agendamento não pode ser confirmado no estado atual."
	msgInternal   = "Algo deu errado. Tente novamente em instantes."
)

// AppointmentService сервис жизненного цикла записей
type AppointmentService interface {
	Confirm(id string) (domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

// Handler обработчик подтверждения записи оператором
type Handler struct {
	service AppointmentService
	log     Logger
}

// NewHandler создает новый экземпляр Handler
func NewHandler(service AppointmentService, log Logger) *Handler {
	return &Handler{service: service, log: log}
}

// Handle POST /api/v1/admin/appointments/{id}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	app, err := h.service.Confirm(mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			handlers.RespondError(w, http.StatusNotFound, msgNotFound)
		case errors.Is(err, appointments.ErrInvalidTransition):
			handlers.RespondError(w, http.StatusConflict, msgTransition)
		default:
			h.log.Error("[Handle] confirm appointment: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, app)
}
