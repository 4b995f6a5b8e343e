package notifications

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ivonestudio/studio-service/internal/api/handlers"
	"github.com/ivonestudio/studio-service/internal/domain"
)

// Feed лента уведомлений оператора
type Feed interface {
	Feed() []domain.Notification
	MarkAllRead()
	Delete(id string)
}

// Handler обработчик ленты уведомлений
type Handler struct {
	feed Feed
}

// NewHandler создает новый экземпляр Handler
func NewHandler(feed Feed) *Handler {
	return &Handler{feed: feed}
}

// Handle GET /api/v1/admin/notifications
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.feed.Feed())
}

// HandleMarkAllRead POST /api/v1/admin/notifications/read-all
func (h *Handler) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	h.feed.MarkAllRead()
	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete DELETE /api/v1/admin/notifications/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	h.feed.Delete(mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}
