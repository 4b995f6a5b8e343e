package get_loyalty_progress

import (
	"errors"
	"net/http"

	"github.com/ivonestudio/studio-service/internal/api/handlers"
	"github.com/ivonestudio/studio-service/internal/api/middleware"
	"github.com/ivonestudio/studio-service/internal/service/loyalty"
)

const (
	msgUserNotFound = "Cadastro não encontrado. Faça login novamente."
	msgInternal     = "Algo deu errado. Tente novamente em instantes."
)

// LoyaltyService сервис клуба лояльности
type LoyaltyService interface {
	Progress(phone string) ([]loyalty.CardProgress, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

// Handler обработчик прогресса по карточкам лояльности
type Handler struct {
	service LoyaltyService
	log     Logger
}

// NewHandler создает новый экземпляр Handler
func NewHandler(service LoyaltyService, log Logger) *Handler {
	return &Handler{service: service, log: log}
}

// Handle GET /api/v1/loyalty/progress
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	progress, err := h.service.Progress(middleware.UserPhone(r))
	if err != nil {
		switch {
		case errors.Is(err, loyalty.ErrUserNotFound):
			handlers.RespondError(w, http.StatusNotFound, msgUserNotFound)
		default:
			h.log.Error("[Handle] loyalty progress: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, progress)
}
