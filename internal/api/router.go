// Package api собирает HTTP-маршруты сервиса.
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ivonestudio/studio-service/internal/api/handlers/cancel_appointment"
	"github.com/ivonestudio/studio-service/internal/api/handlers/check_in"
	"github.com/ivonestudio/studio-service/internal/api/handlers/complete_appointment"
	"github.com/ivonestudio/studio-service/internal/api/handlers/confirm_appointment"
	"github.com/ivonestudio/studio-service/internal/api/handlers/confirm_payment"
	"github.com/ivonestudio/studio-service/internal/api/handlers/convert_referral"
	"github.com/ivonestudio/studio-service/internal/api/handlers/create_booking"
	"github.com/ivonestudio/studio-service/internal/api/handlers/delete_user"
	"github.com/ivonestudio/studio-service/internal/api/handlers/get_available_slots"
	"github.com/ivonestudio/studio-service/internal/api/handlers/get_loyalty_progress"
	"github.com/ivonestudio/studio-service/internal/api/handlers/get_snapshot"
	"github.com/ivonestudio/studio-service/internal/api/handlers/list_appointments"
	"github.com/ivonestudio/studio-service/internal/api/handlers/login"
	"github.com/ivonestudio/studio-service/internal/api/handlers/manage_salon"
	"github.com/ivonestudio/studio-service/internal/api/handlers/notifications"
	"github.com/ivonestudio/studio-service/internal/api/handlers/pay_appointment"
	"github.com/ivonestudio/studio-service/internal/api/handlers/rate_appointment"
	"github.com/ivonestudio/studio-service/internal/api/handlers/redeem_voucher"
	"github.com/ivonestudio/studio-service/internal/api/handlers/request_cancellation"
	"github.com/ivonestudio/studio-service/internal/api/handlers/update_preferences"
	"github.com/ivonestudio/studio-service/internal/api/handlers/update_user"
	"github.com/ivonestudio/studio-service/internal/api/handlers/update_user_points"
	"github.com/ivonestudio/studio-service/internal/api/middleware"
	"github.com/ivonestudio/studio-service/pkg/metrics"
)

// Handlers все обработчики сервиса
type Handlers struct {
	Login           *login.Handler
	UpdateUser      *update_user.Handler
	DeleteUser      *delete_user.Handler
	CreateBooking   *create_booking.Handler
	Slots           *get_available_slots.Handler
	Snapshot        *get_snapshot.Handler
	Appointments    *list_appointments.Handler
	Preferences     *update_preferences.Handler
	Confirm         *confirm_appointment.Handler
	Cancel          *cancel_appointment.Handler
	RequestCancel   *request_cancellation.Handler
	CheckIn         *check_in.Handler
	Complete        *complete_appointment.Handler
	Pay             *pay_appointment.Handler
	ConfirmPayment  *confirm_payment.Handler
	Rate            *rate_appointment.Handler
	LoyaltyProgress *get_loyalty_progress.Handler
	RedeemVoucher   *redeem_voucher.Handler
	UserPoints      *update_user_points.Handler
	ConvertReferral *convert_referral.Handler
	ManageSalon     *manage_salon.Handler
	Notifications   *notifications.Handler
}

// RouterOptions зависимости маршрутизатора
type RouterOptions struct {
	AdminKey    string
	Metrics     *metrics.Metrics
	MetricsPath string
	Log         middleware.Logger
}

// NewRouter собирает маршрутизатор: открытые маршруты, маршруты
// клиентки (телефон в заголовке) и маршруты оператора (ключ администратора)
func NewRouter(h Handlers, opts RouterOptions) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Logging(opts.Log))
	if opts.Metrics != nil {
		r.Use(middleware.Metrics(opts.Metrics))
		r.Handle(opts.MetricsPath, promhttp.Handler()).Methods(http.MethodGet)
	}

	v1 := r.PathPrefix("/api/v1").Subrouter()

	// Открытые маршруты
	v1.HandleFunc("/login", h.Login.Handle).Methods(http.MethodPost)
	v1.HandleFunc("/slots", h.Slots.Handle).Methods(http.MethodGet)
	v1.HandleFunc("/snapshot", h.Snapshot.Handle).Methods(http.MethodGet)
	v1.HandleFunc("/salon-config", h.ManageSalon.HandleGetConfig).Methods(http.MethodGet)
	v1.HandleFunc("/accessibility", h.ManageSalon.HandleGetAccessibility).Methods(http.MethodGet)
	v1.HandleFunc("/accessibility", h.ManageSalon.HandleUpdateAccessibility).Methods(http.MethodPut)

	// Маршруты клиентки
	client := v1.NewRoute().Subrouter()
	client.Use(middleware.Auth)
	client.HandleFunc("/profile", h.UpdateUser.HandleProfile).Methods(http.MethodPut)
	client.HandleFunc("/profile/accept-terms", h.UpdateUser.HandleAcceptTerms).Methods(http.MethodPost)
	client.HandleFunc("/appointments", h.Appointments.Handle).Methods(http.MethodGet)
	client.HandleFunc("/appointments", h.CreateBooking.Handle).Methods(http.MethodPost)
	client.HandleFunc("/appointments/{id}/cancel", h.Cancel.Handle).Methods(http.MethodPost)
	client.HandleFunc("/appointments/{id}/request-cancellation", h.RequestCancel.Handle).Methods(http.MethodPost)
	client.HandleFunc("/appointments/{id}/check-in", h.CheckIn.Handle).Methods(http.MethodPost)
	client.HandleFunc("/appointments/{id}/pay", h.Pay.Handle).Methods(http.MethodPost)
	client.HandleFunc("/appointments/{id}/rate", h.Rate.Handle).Methods(http.MethodPost)
	client.HandleFunc("/appointments/{id}/preferences", h.Preferences.Handle).Methods(http.MethodPut)
	client.HandleFunc("/loyalty/progress", h.LoyaltyProgress.Handle).Methods(http.MethodGet)

	// Маршруты оператора
	admin := v1.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Admin(opts.AdminKey))
	admin.HandleFunc("/appointments", h.Appointments.HandleOperator).Methods(http.MethodGet)
	admin.HandleFunc("/appointments", h.CreateBooking.HandleOperator).Methods(http.MethodPost)
	admin.HandleFunc("/appointments/{id}/confirm", h.Confirm.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/appointments/{id}/cancel", h.Cancel.HandleOperator).Methods(http.MethodPost)
	admin.HandleFunc("/appointments/{id}/complete", h.Complete.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/appointments/{id}/confirm-payment", h.ConfirmPayment.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/users", h.Appointments.HandleUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{phone}", h.DeleteUser.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/users/{phone}/points", h.UserPoints.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/users/{phone}/referrals/convert", h.ConvertReferral.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/vouchers/{id}/redeem", h.RedeemVoucher.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/salon-config", h.ManageSalon.HandleUpdateConfig).Methods(http.MethodPut)
	admin.HandleFunc("/offers/{day}", h.ManageSalon.HandleUpdateOffer).Methods(http.MethodPut)
	admin.HandleFunc("/notifications", h.Notifications.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/notifications/read-all", h.Notifications.HandleMarkAllRead).Methods(http.MethodPost)
	admin.HandleFunc("/notifications/{id}", h.Notifications.HandleDelete).Methods(http.MethodDelete)

	return r
}
