package list_appointments

import (
	"net/http"

	"github.com/ivonestudio/studio-service/internal/api/handlers"
	"github.com/ivonestudio/studio-service/internal/api/middleware"
	"github.com/ivonestudio/studio-service/internal/domain"
)

// AppointmentStore интерфейс состояния записей
type AppointmentStore interface {
	Appointments() []domain.Appointment
	AppointmentsByPhone(phone string) []domain.Appointment
}

// UserStore интерфейс состояния клиенток
type UserStore interface {
	Users() []domain.User
}

// Handler обработчик списков записей
type Handler struct {
	apps  AppointmentStore
	users UserStore
}

// NewHandler создает новый экземпляр Handler
func NewHandler(apps AppointmentStore, users UserStore) *Handler {
	return &Handler{apps: apps, users: users}
}

// Handle GET /api/v1/appointments — записи текущей клиентки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.apps.AppointmentsByPhone(middleware.UserPhone(r)))
}

// HandleOperator GET /api/v1/admin/appointments — все записи
func (h *Handler) HandleOperator(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.apps.Appointments())
}

// HandleUsers GET /api/v1/admin/users — все клиентки
func (h *Handler) HandleUsers(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.users.Users())
}
