package redeem_voucher

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ivonestudio/studio-service/internal/api/handlers"
	"github.com/ivonestudio/studio-service/internal/domain"
	"github.com/ivonestudio/studio-service/internal/service/loyalty"
)

const (
	msgNotFound = "Voucher não encontrado."
	msgInternal = "Algo deu errado. Tente novamente em instantes."
)

// LoyaltyService сервис клуба лояльности
type LoyaltyService interface {
	RedeemVoucher(id string) (domain.Voucher, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

// Handler обработчик погашения ваучера оператором
type Handler struct {
	service LoyaltyService
	log     Logger
}

// NewHandler создает новый экземпляр Handler
func NewHandler(service LoyaltyService, log Logger) *Handler {
	return &Handler{service: service, log: log}
}

// Handle POST /api/v1/admin/vouchers/{id}/redeem
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	voucher, err := h.service.RedeemVoucher(mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, loyalty.ErrVoucherNotFound):
			handlers.RespondError(w, http.StatusNotFound, msgNotFound)
		default:
			h.log.Error("[Handle] redeem voucher: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, voucher)
}
