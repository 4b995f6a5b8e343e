package rate_appointment

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
	msgBadRequest    = "Não foi possível entender os dados de entrada."
	msgInvalidRating = "A avaliação deve ser entre 1 e 5 estrelas."
	msgNotFound      = "Agendamento não encontrado."
	msgAccessDenied  = "Este agendamento pertence a outra cliente."
	msgTransition    = "Só é possível avaliar um atendimento concluído."
	msgAlreadyRated  = "Este atendimento já foi avaliado."
	msgInternal      = "Algo deu errado. Tente novamente em instantes."
)

// Request тело оценки. Rating -1 — клиентка отказалась оценивать.
type Request struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// AppointmentService сервис жизненного цикла записей
type AppointmentService interface {
	Rate(id, actorPhone string, rating int, comment string) (domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Handler обработчик оценки обслуживания
type Handler struct {
	service AppointmentService
	log     Logger
}

// NewHandler создает новый экземпляр Handler
func NewHandler(service AppointmentService, log Logger) *Handler {
	return &Handler{service: service, log: log}
}

// Handle POST /api/v1/appointments/{id}/rate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.log.Warn("[Handle] rate: %v", err)
		handlers.RespondError(w, http.StatusBadRequest, msgBadRequest)
		return
	}

	app, err := h.service.Rate(mux.Vars(r)["id"], middleware.UserPhone(r), req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidRating):
			handlers.RespondError(w, http.StatusBadRequest, msgInvalidRating)
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			handlers.RespondError(w, http.StatusNotFound, msgNotFound)
		case errors.Is(err, appointments.ErrAccessDenied):
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)
		case errors.Is(err, appointments.ErrAlreadyRated):
			handlers.RespondError(w, http.StatusConflict, msgAlreadyRated)
		case errors.Is(err, appointments.ErrInvalidTransition):
			handlers.RespondError(w, http.StatusConflict, msgTransition)
		default:
			h.log.Error("[Handle] rate: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, app)
}
