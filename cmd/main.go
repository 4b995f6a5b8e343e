package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/ivonestudio/studio-service/internal/api"
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
	"github.com/ivonestudio/studio-service/internal/config"
	"github.com/ivonestudio/studio-service/internal/infra/docstore"
	"github.com/ivonestudio/studio-service/internal/integrations/whatsapp"
	"github.com/ivonestudio/studio-service/internal/notifier"
	"github.com/ivonestudio/studio-service/internal/reminder"
	appointmentssvc "github.com/ivonestudio/studio-service/internal/service/appointments"
	loyaltysvc "github.com/ivonestudio/studio-service/internal/service/loyalty"
	salonsvc "github.com/ivonestudio/studio-service/internal/service/salon"
	userssvc "github.com/ivonestudio/studio-service/internal/service/users"
	"github.com/ivonestudio/studio-service/internal/speech"
	"github.com/ivonestudio/studio-service/internal/state"
	createbooking "github.com/ivonestudio/studio-service/internal/usecase/create_booking"
	getslots "github.com/ivonestudio/studio-service/internal/usecase/get_available_slots"
	"github.com/ivonestudio/studio-service/pkg/logger"
	"github.com/ivonestudio/studio-service/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	if err := run(cfg, log); err != nil {
		log.Fatal("service stopped with error: %v", err)
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	store := docstore.New(db)
	if err := store.Bootstrap(ctx); err != nil {
		return fmt.Errorf("failed to bootstrap document store: %w", err)
	}

	st := state.NewController(store, log)
	if err := st.Load(ctx); err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}
	log.Info("state loaded")

	var sender notifier.Sender
	if cfg.Notifications.WhatsappEnabled() {
		sender = whatsapp.NewClient(
			cfg.Notifications.TwilioAccountSID,
			cfg.Notifications.TwilioAuthToken,
			cfg.Notifications.TwilioWhatsappFrom,
			log,
		)
		log.Info("whatsapp delivery enabled")
	}
	dispatcher := notifier.New(log, sender)

	narrator := speech.New(st, log)

	paymentNoticeDelay := time.Duration(cfg.Notifications.PaymentNoticeDelay) * time.Second

	usersService := userssvc.NewService(st, narrator, log)
	appointmentsService := appointmentssvc.NewService(st, st, st, st, dispatcher, narrator, log, paymentNoticeDelay)
	loyaltyService := loyaltysvc.NewService(st, st, st, dispatcher, log)
	salonService := salonsvc.NewService(st, log)

	bookingUseCase := createbooking.NewUseCase(st, st, st, dispatcher, log)
	slotsUseCase := getslots.NewUseCase(st, log)

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(cfg.Metrics.ServiceName)
	}

	router := api.NewRouter(api.Handlers{
		Login:           login.NewHandler(usersService, log),
		UpdateUser:      update_user.NewHandler(usersService, log),
		DeleteUser:      delete_user.NewHandler(usersService, log),
		CreateBooking:   create_booking.NewHandler(bookingUseCase, log),
		Slots:           get_available_slots.NewHandler(slotsUseCase, log),
		Snapshot:        get_snapshot.NewHandler(st),
		Appointments:    list_appointments.NewHandler(st, st),
		Preferences:     update_preferences.NewHandler(appointmentsService, log),
		Confirm:         confirm_appointment.NewHandler(appointmentsService, log),
		Cancel:          cancel_appointment.NewHandler(appointmentsService, log),
		RequestCancel:   request_cancellation.NewHandler(appointmentsService, log),
		CheckIn:         check_in.NewHandler(appointmentsService, log),
		Complete:        complete_appointment.NewHandler(appointmentsService, log),
		Pay:             pay_appointment.NewHandler(appointmentsService, log),
		ConfirmPayment:  confirm_payment.NewHandler(appointmentsService, log),
		Rate:            rate_appointment.NewHandler(appointmentsService, log),
		LoyaltyProgress: get_loyalty_progress.NewHandler(loyaltyService, log),
		RedeemVoucher:   redeem_voucher.NewHandler(loyaltyService, log),
		UserPoints:      update_user_points.NewHandler(loyaltyService, log),
		ConvertReferral: convert_referral.NewHandler(loyaltyService, log),
		ManageSalon:     manage_salon.NewHandler(salonService, log),
		Notifications:   notifications.NewHandler(dispatcher),
	}, api.RouterOptions{
		AdminKey:    cfg.Server.AdminKey,
		Metrics:     m,
		MetricsPath: cfg.Metrics.Path,
		Log:         log,
	})

	var reminders *reminder.Scheduler
	if cfg.Reminders.Enabled {
		reminders = reminder.NewScheduler(st, st, dispatcher, log, cfg.Reminders.Schedule)
		if err := reminders.Start(); err != nil {
			return err
		}
		defer reminders.Stop()
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening on :%d", cfg.Server.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case sig := <-quit:
		log.Info("received signal %s, shutting down", sig)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	log.Info("server stopped")
	return nil
}
