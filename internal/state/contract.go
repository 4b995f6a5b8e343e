package state

import "context"

// Имена персистентных документов — по одному на коллекцию верхнего уровня
const (
	docUsers         = "ivone_all_users"
	docAppointments  = "ivone_apps"
	docServices      = "ivone_services"
	docVouchers      = "ivone_vouchers"
	docOffers        = "ivone_offers"
	docGallery       = "ivone_gallery"
	docSalonConfig   = "ivone_config"
	docAccessibility = "ivone_accessibility"
)

// DocumentStore интерфейс непрозрачного хранилища ключ → документ
type DocumentStore interface {
	Get(ctx context.Context, name string) ([]byte, error)
	Put(ctx context.Context, name string, body []byte) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
