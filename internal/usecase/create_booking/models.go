package create_booking

import "github.com/ivonestudio/studio-service/internal/domain"

// Request запрос на создание записи
type Request struct {
	ServiceID   string
	ClientName  string
	ClientPhone string
	Date        string // "2006-01-02"
	Time        string // "15:04"

	TermsAccepted   bool
	WhatsappConsent bool

	// ByOperator — прямая запись оператором: минуя pending, сразу confirmed
	ByOperator bool
}

// Response результат создания записи
type Response struct {
	Appointment domain.Appointment
}
