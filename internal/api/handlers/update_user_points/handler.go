package update_user_points

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ivonestudio/studio-service/internal/api/handlers"
	"github.com/ivonestudio/studio-service/internal/domain"
	"github.com/ivonestudio/studio-service/internal/service/loyalty"
)

const (
	msgBadRequest    = "Não foi possível entender os dados de entrada."
	msgInvalidPoints = "Os pontos não podem ser negativos."
	msgUserNotFound  = "Cadastro não encontrado."
	msgInternal      = "Algo deu errado. Tente novamente em instantes."
)

// LoyaltyService сервис клуба лояльности
type LoyaltyService interface {
	UpdateUserPoints(phone string, points domain.UserPoints) (domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Handler обработчик ручного начисления баллов оператором
type Handler struct {
	service LoyaltyService
	log     Logger
}

// NewHandler создает новый экземпляр Handler
func NewHandler(service LoyaltyService, log Logger) *Handler {
	return &Handler{service: service, log: log}
}

// Handle PUT /api/v1/admin/users/{phone}/points
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var points domain.UserPoints
	if err := handlers.DecodeJSON(r, &points); err != nil {
		h.log.Warn("[Handle] update points: %v", err)
		handlers.RespondError(w, http.StatusBadRequest, msgBadRequest)
		return
	}

	user, err := h.service.UpdateUserPoints(mux.Vars(r)["phone"], points)
	if err != nil {
		switch {
		case errors.Is(err, loyalty.ErrInvalidPoints):
			handlers.RespondError(w, http.StatusBadRequest, msgInvalidPoints)
		case errors.Is(err, loyalty.ErrUserNotFound):
			handlers.RespondError(w, http.StatusNotFound, msgUserNotFound)
		default:
			h.log.Error("[Handle] update points: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, user)
}
