package convert_referral

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ivonestudio/studio-service/internal/api/handlers"
	"github.com/ivonestudio/studio-service/internal/domain"
	"github.com/ivonestudio/studio-service/internal/service/loyalty"
)

const (
	msgBadRequest       = "Informe o nome da amiga indicada."
	msgUserNotFound     = "Cadastro não encontrado."
	msgReferralNotFound = "Indicação não encontrada para esta cliente."
	msgInternal         = "Algo deu errado. Tente novamente em instantes."
)

// Request тело конвертации приглашения
type Request struct {
	FriendName string `json:"friendName"`
}

// LoyaltyService сервис клуба лояльности
type LoyaltyService interface {
	ConvertReferral(referrerPhone, friendName string) (domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Handler обработчик конвертации приглашения после первого визита
type Handler struct {
	service LoyaltyService
	log     Logger
}

// NewHandler создает новый экземпляр Handler
func NewHandler(service LoyaltyService, log Logger) *Handler {
	return &Handler{service: service, log: log}
}

// Handle POST /api/v1/admin/users/{phone}/referrals/convert
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil || req.FriendName == "" {
		h.log.Warn("[Handle] convert referral: bad request")
		handlers.RespondError(w, http.StatusBadRequest, msgBadRequest)
		return
	}

	user, err := h.service.ConvertReferral(mux.Vars(r)["phone"], req.FriendName)
	if err != nil {
		switch {
		case errors.Is(err, loyalty.ErrUserNotFound):
			handlers.RespondError(w, http.StatusNotFound, msgUserNotFound)
		case errors.Is(err, loyalty.ErrReferralNotFound):
			handlers.RespondError(w, http.StatusNotFound, msgReferralNotFound)
		default:
			h.log.Error("[Handle] convert referral: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, user)
}
