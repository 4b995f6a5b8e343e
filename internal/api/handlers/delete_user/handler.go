package delete_user

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ivonestudio/studio-service/internal/api/handlers"
	"github.com/ivonestudio/studio-service/internal/service/users"
)

const (
	msgUserNotFound = "Cadastro não encontrado."
	msgInternal     = "Algo deu errado. Tente novamente em instantes."
)

// UserService сервис учётных записей
type UserService interface {
	Delete(phone string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

// Handler обработчик удаления учётной записи оператором
type Handler struct {
	service UserService
	log     Logger
}

// NewHandler создает новый экземпляр Handler
func NewHandler(service UserService, log Logger) *Handler {
	return &Handler{service: service, log: log}
}

// Handle DELETE /api/v1/admin/users/{phone}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	phone := mux.Vars(r)["phone"]

	if err := h.service.Delete(phone); err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			handlers.RespondError(w, http.StatusNotFound, msgUserNotFound)
		default:
			h.log.Error("[Handle] delete user: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
