package get_snapshot

import (
	"net/http"

	"github.com/ivonestudio/studio-service/internal/api/handlers"
	"github.com/ivonestudio/studio-service/internal/domain"
)

// StateProvider доступ к витринной части состояния
type StateProvider interface {
	Services() []domain.Service
	Vouchers() []domain.Voucher
	WeeklyOffers() []domain.WeeklyOffer
	Gallery() []domain.GalleryItem
	SalonConfig() domain.SalonConfig
	Accessibility() domain.AccessibilityPrefs
}

// Response срез витринного состояния для клиентского приложения
type Response struct {
	Services      []domain.Service          `json:"services"`
	Vouchers      []domain.Voucher          `json:"vouchers"`
	WeeklyOffers  []domain.WeeklyOffer      `json:"weeklyOffers"`
	Gallery       []domain.GalleryItem      `json:"gallery"`
	SalonConfig   domain.SalonConfig        `json:"salonConfig"`
	Accessibility domain.AccessibilityPrefs `json:"accessibility"`
}

// Handler обработчик витринного снимка состояния
type Handler struct {
	state StateProvider
}

// NewHandler создает новый экземпляр Handler
func NewHandler(state StateProvider) *Handler {
	return &Handler{state: state}
}

// Handle GET /api/v1/snapshot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{
		Services:      h.state.Services(),
		Vouchers:      h.state.Vouchers(),
		WeeklyOffers:  h.state.WeeklyOffers(),
		Gallery:       h.state.Gallery(),
		SalonConfig:   h.state.SalonConfig(),
		Accessibility: h.state.Accessibility(),
	})
}
