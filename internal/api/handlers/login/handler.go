package login

import (
	"errors"
	"net/http"

	"github.com/ivonestudio/studio-service/internal/api/handlers"
	"github.com/ivonestudio/studio-service/internal/service/users"
)

const (
	msgBadRequest = "Não foi possível entender os dados de entrada."
	msgValidation = "Preencha nome e telefone para entrar."
	msgInternal   = "Algo deu errado. Tente novamente em instantes."
)

// Request тело запроса входа
type Request struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	BirthDate    string `json:"birthDate,omitempty"`
	ReferralCode string `json:"referralCode,omitempty"`
}

// Handler обработчик входа и регистрации
type Handler struct {
	service UserService
	log     Logger
}

// NewHandler создает новый экземпляр Handler
func NewHandler(service UserService, log Logger) *Handler {
	return &Handler{service: service, log: log}
}

// Handle POST /api/v1/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.log.Warn("[Handle] login: %v", err)
		handlers.RespondError(w, http.StatusBadRequest, msgBadRequest)
		return
	}

	user, err := h.service.Login(users.LoginRequest{
		Name:         req.Name,
		Phone:        req.Phone,
		BirthDate:    req.BirthDate,
		ReferralCode: req.ReferralCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidInput):
			handlers.RespondError(w, http.StatusBadRequest, msgValidation)
		default:
			h.log.Error("[Handle] login: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, user)
}
