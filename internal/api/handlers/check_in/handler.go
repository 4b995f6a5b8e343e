package check_in

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
	msgTransition   = "O check-in só está disponível para horários confirmados."
	msgBadRequest   = "Não foi possível entender os dados de entrada."
	msgInternal     = "Algo deu errado. Tente novamente em instantes."
)

// Request тело запроса check-in. Фото и ритуал предпочтений опциональны.
type Request struct {
	Photo       string                    `json:"photo,omitempty"`
	Preferences *domain.ClientPreferences `json:"preferences,omitempty"`
}

// AppointmentService сервис жизненного цикла записей
type AppointmentService interface {
	CheckIn(id, actorPhone, photo string, prefs *domain.ClientPreferences) (domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Handler обработчик check-in
type Handler struct {
	service AppointmentService
	log     Logger
}

// NewHandler создает новый экземпляр Handler
func NewHandler(service AppointmentService, log Logger) *Handler {
	return &Handler{service: service, log: log}
}

// Handle POST /api/v1/appointments/{id}/check-in
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req Request
	if r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.log.Warn("[Handle] check-in: %v", err)
			handlers.RespondError(w, http.StatusBadRequest, msgBadRequest)
			return
		}
	}

	app, err := h.service.CheckIn(mux.Vars(r)["id"], middleware.UserPhone(r), req.Photo, req.Preferences)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			handlers.RespondError(w, http.StatusNotFound, msgNotFound)
		case errors.Is(err, appointments.ErrAccessDenied):
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)
		case errors.Is(err, appointments.ErrInvalidTransition):
			handlers.RespondError(w, http.StatusConflict, msgTransition)
		default:
			h.log.Error("[Handle] check-in: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, app)
}
