package pay_appointment

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
	msgBadRequest   = "Informe a forma de pagamento."
	msgNotFound     = "Agendamento não encontrado."
	msgAccessDenied = "Este agendamento pertence a outra cliente."
	msgTransition   = "Este pagamento já foi confirmado."
	msgInternal     = "Algo deu errado. Tente novamente em instantes."
)

// Request тело отметки оплаты
type Request struct {
	Method string `json:"method"` // pix | cartao | dinheiro
}

// AppointmentService сервис жизненного цикла записей
type AppointmentService interface {
	Pay(id, actorPhone, method string) (domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Handler обработчик отметки оплаты клиенткой
type Handler struct {
	service AppointmentService
	log     Logger
}

// NewHandler создает новый экземпляр Handler
func NewHandler(service AppointmentService, log Logger) *Handler {
	return &Handler{service: service, log: log}
}

// Handle POST /api/v1/appointments/{id}/pay
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.log.Warn("[Handle] pay: %v", err)
		handlers.RespondError(w, http.StatusBadRequest, msgBadRequest)
		return
	}

	app, err := h.service.Pay(mux.Vars(r)["id"], middleware.UserPhone(r), req.Method)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			handlers.RespondError(w, http.StatusBadRequest, msgBadRequest)
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			handlers.RespondError(w, http.StatusNotFound, msgNotFound)
		case errors.Is(err, appointments.ErrAccessDenied):
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)
		case errors.Is(err, appointments.ErrInvalidTransition):
			handlers.RespondError(w, http.StatusConflict, msgTransition)
		default:
			h.log.Error("[Handle] pay: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, app)
}
