package update_preferences

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
	msgBadRequest   = "Não foi possível entender os dados de entrada."
	msgNotFound     = "Agendamento não encontrado."
	msgAccessDenied = "Este agendamento pertence a outra cliente."
	msgTransition   = "Este agendamento já foi encerrado."
	msgInternal     = "Algo deu errado. Tente novamente em instantes."
)

// AppointmentService сервис жизненного цикла записей
type AppointmentService interface {
	UpdatePreferences(id, actorPhone string, prefs domain.ClientPreferences) (domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Handler обработчик ритуала предпочтений визита
type Handler struct {
	service AppointmentService
	log     Logger
}

// NewHandler создает новый экземпляр Handler
func NewHandler(service AppointmentService, log Logger) *Handler {
	return &Handler{service: service, log: log}
}

// Handle PUT /api/v1/appointments/{id}/preferences
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var prefs domain.ClientPreferences
	if err := handlers.DecodeJSON(r, &prefs); err != nil {
		h.log.Warn("[Handle] update preferences: %v", err)
		handlers.RespondError(w, http.StatusBadRequest, msgBadRequest)
		return
	}

	app, err := h.service.UpdatePreferences(mux.Vars(r)["id"], middleware.UserPhone(r), prefs)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			handlers.RespondError(w, http.StatusNotFound, msgNotFound)
		case errors.Is(err, appointments.ErrAccessDenied):
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)
		case errors.Is(err, appointments.ErrInvalidTransition):
			handlers.RespondError(w, http.StatusConflict, msgTransition)
		default:
			h.log.Error("[Handle] update preferences: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, app)
}
