package manage_salon

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ivonestudio/studio-service/internal/api/handlers"
	"github.com/ivonestudio/studio-service/internal/domain"
	"github.com/ivonestudio/studio-service/internal/service/salon"
)

const (
	msgBadRequest    = "Não foi possível entender os dados de entrada."
	msgInvalidDay    = "Informe um dia da semana entre 0 e 6."
	msgOfferNotFound = "Não há oferta cadastrada para este dia."
	msgInternal      = "Algo deu errado. Tente novamente em instantes."
)

// ConfigRequest частичное обновление конфигурации салона
type ConfigRequest struct {
	PointsPerService     *int    `json:"pointsPerService,omitempty"`
	PointsTarget         *int    `json:"pointsTarget,omitempty"`
	PointsValidityMonths *int    `json:"pointsValidityMonths,omitempty"`
	PixPrepayment        *bool   `json:"pixPrepayment,omitempty"`
	PixName              *string `json:"pixName,omitempty"`

	BusinessHours *domain.BusinessHours `json:"businessHours,omitempty"`
	LoyaltyClub   *domain.LoyaltyClub   `json:"loyaltyClub,omitempty"`
	DynamicText   *domain.DynamicText   `json:"dynamicText,omitempty"`
	Colors        *domain.ThemeColors   `json:"colors,omitempty"`
}

// OfferRequest частичное обновление акционного дня
type OfferRequest struct {
	Title  *string                   `json:"title,omitempty"`
	Offers *[]domain.WeeklyOfferItem `json:"offers,omitempty"`
	Active *bool                     `json:"active,omitempty"`
}

// Handler обработчик управления настройками салона
type Handler struct {
	service SalonService
	log     Logger
}

// NewHandler создает новый экземпляр Handler
func NewHandler(service SalonService, log Logger) *Handler {
	return &Handler{service: service, log: log}
}

// HandleGetConfig GET /api/v1/salon-config
func (h *Handler) HandleGetConfig(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.Config())
}

// HandleUpdateConfig PUT /api/v1/admin/salon-config
func (h *Handler) HandleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req ConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.log.Warn("[HandleUpdateConfig] %v", err)
		handlers.RespondError(w, http.StatusBadRequest, msgBadRequest)
		return
	}

	cfg := h.service.UpdateConfig(salon.ConfigUpdate{
		PointsPerService:     req.PointsPerService,
		PointsTarget:         req.PointsTarget,
		PointsValidityMonths: req.PointsValidityMonths,
		PixPrepayment:        req.PixPrepayment,
		PixName:              req.PixName,

		BusinessHours: req.BusinessHours,
		LoyaltyClub:   req.LoyaltyClub,
		DynamicText:   req.DynamicText,
		Colors:        req.Colors,
	})

	handlers.RespondJSON(w, http.StatusOK, cfg)
}

// HandleUpdateOffer PUT /api/v1/admin/offers/{day}
func (h *Handler) HandleUpdateOffer(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(mux.Vars(r)["day"])
	if err != nil {
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidDay)
		return
	}

	var req OfferRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.log.Warn("[HandleUpdateOffer] %v", err)
		handlers.RespondError(w, http.StatusBadRequest, msgBadRequest)
		return
	}

	offer, err := h.service.UpdateWeeklyOffer(day, salon.OfferUpdate{
		Title:  req.Title,
		Offers: req.Offers,
		Active: req.Active,
	})
	if err != nil {
		switch {
		case errors.Is(err, salon.ErrInvalidInput):
			handlers.RespondError(w, http.StatusBadRequest, msgInvalidDay)
		case errors.Is(err, salon.ErrOfferNotFound):
			handlers.RespondError(w, http.StatusNotFound, msgOfferNotFound)
		default:
			h.log.Error("[HandleUpdateOffer] %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, offer)
}

// HandleGetAccessibility GET /api/v1/accessibility
func (h *Handler) HandleGetAccessibility(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.Accessibility())
}

// HandleUpdateAccessibility PUT /api/v1/accessibility
func (h *Handler) HandleUpdateAccessibility(w http.ResponseWriter, r *http.Request) {
	var prefs domain.AccessibilityPrefs
	if err := handlers.DecodeJSON(r, &prefs); err != nil {
		h.log.Warn("[HandleUpdateAccessibility] %v", err)
		handlers.RespondError(w, http.StatusBadRequest, msgBadRequest)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, h.service.UpdateAccessibility(prefs))
}
