package update_user

import (
	"errors"
	"net/http"

	"github.com/ivonestudio/studio-service/internal/api/handlers"
	"github.com/ivonestudio/studio-service/internal/api/middleware"
	"github.com/ivonestudio/studio-service/internal/domain"
	"github.com/ivonestudio/studio-service/internal/service/users"
)

const (
	msgBadRequest   = "Não foi possível entender os dados de entrada."
	msgValidation   = "Verifique os dados informados."
	msgUserNotFound = "Cadastro não encontrado. Faça login novamente."
	msgInternal     = "Algo deu errado. Tente novamente em instantes."
)

// ProfileRequest тело обновления профиля. Пропущенные поля не меняются.
type ProfileRequest struct {
	Name                 *string                   `json:"name,omitempty"`
	BirthDate            *string                   `json:"birthDate,omitempty"`
	PermanentPreferences *domain.ClientPreferences `json:"permanentPreferences,omitempty"`
}

// Handler обработчик обновления профиля и согласия с условиями
type Handler struct {
	service UserService
	log     Logger
}

// NewHandler создает новый экземпляр Handler
func NewHandler(service UserService, log Logger) *Handler {
	return &Handler{service: service, log: log}
}

// HandleProfile PUT /api/v1/profile
func (h *Handler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.log.Warn("[HandleProfile] %v", err)
		handlers.RespondError(w, http.StatusBadRequest, msgBadRequest)
		return
	}

	user, err := h.service.UpdateProfile(middleware.UserPhone(r), users.UpdateProfileRequest{
		Name:                 req.Name,
		BirthDate:            req.BirthDate,
		PermanentPreferences: req.PermanentPreferences,
	})
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, user)
}

// HandleAcceptTerms POST /api/v1/profile/accept-terms
func (h *Handler) HandleAcceptTerms(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.AcceptTerms(middleware.UserPhone(r))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, user)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, users.ErrUserNotFound):
		handlers.RespondError(w, http.StatusNotFound, msgUserNotFound)
	case errors.Is(err, users.ErrInvalidInput):
		handlers.RespondError(w, http.StatusBadRequest, msgValidation)
	default:
		h.log.Error("[respondServiceError] %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
	}
}
