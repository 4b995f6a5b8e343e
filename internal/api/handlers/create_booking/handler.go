package create_booking

import (
	"errors"
	"net/http"

	"github.com/ivonestudio/studio-service/internal/api/handlers"
	"github.com/ivonestudio/studio-service/internal/api/middleware"
	usecase "github.com/ivonestudio/studio-service/internal/usecase/create_booking"
)

const (
	msgBadRequest      = "Não foi possível entender os dados de entrada."
	msgValidation      = "Preencha todos os campos do agendamento."
	msgServiceNotFound = "Serviço não encontrado."
	msgDateNotAllowed  = "O estúdio não abre neste dia."
	msgSlotNotAllowed  = "Este horário não está disponível para agendamento."
	msgInternal        = "Algo deu errado. Tente novamente em instantes."
)

// Request тело запроса на создание записи
type Request struct {
	ServiceID   string `json:"serviceId"`
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone,omitempty"`
	Date        string `json:"date"`
	Time        string `json:"time"`

	TermsAccepted   bool `json:"termsAccepted,omitempty"`
	WhatsappConsent bool `json:"whatsappConsent,omitempty"`
}

// Handler обработчик создания записи
type Handler struct {
	usecase BookingUseCase
	log     Logger
}

// NewHandler создает новый экземпляр Handler
func NewHandler(usecase BookingUseCase, log Logger) *Handler {
	return &Handler{usecase: usecase, log: log}
}

// Handle POST /api/v1/appointments — запись клиенткой, телефон из
// контекста аутентификации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, middleware.UserPhone(r), false)
}

// HandleOperator POST /api/v1/admin/appointments — прямая запись
// оператором, телефон из тела запроса
func (h *Handler) HandleOperator(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "", true)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, phone string, byOperator bool) {
	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.log.Warn("[handle] create booking: %v", err)
		handlers.RespondError(w, http.StatusBadRequest, msgBadRequest)
		return
	}
	if phone == "" {
		phone = req.ClientPhone
	}

	resp, err := h.usecase.Handle(usecase.Request{
		ServiceID:   req.ServiceID,
		ClientName:  req.ClientName,
		ClientPhone: phone,
		Date:        req.Date,
		Time:        req.Time,

		TermsAccepted:   req.TermsAccepted,
		WhatsappConsent: req.WhatsappConsent,

		ByOperator: byOperator,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrValidation):
			handlers.RespondError(w, http.StatusBadRequest, msgValidation)
		case errors.Is(err, usecase.ErrServiceNotFound):
			handlers.RespondError(w, http.StatusNotFound, msgServiceNotFound)
		case errors.Is(err, usecase.ErrDateNotAllowed):
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgDateNotAllowed)
		case errors.Is(err, usecase.ErrSlotNotAllowed):
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgSlotNotAllowed)
		default:
			h.log.Error("[handle] create booking: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, resp.Appointment)
}
