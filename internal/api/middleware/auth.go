package middleware

import (
	"context"
	"net/http"

	"github.com/ivonestudio/studio-service/internal/api/handlers"
	"github.com/ivonestudio/studio-service/internal/domain"
)

type contextKey string

const userPhoneKey contextKey = "userPhone"

const (
	headerUserPhone = "X-User-Phone"
	headerAdminKey  = "X-Admin-Key"
)

const (
	msgPhoneRequired = "Informe seu telefone para continuar."
	msgAdminOnly     = "Acesso restrito ao estúdio."
)

// Auth требует заголовок с телефоном клиентки и кладет его в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		phone := domain.NormalizePhone(r.Header.Get(headerUserPhone))
		if phone == "" {
			handlers.RespondError(w, http.StatusUnauthorized, msgPhoneRequired)
			return
		}
		ctx := context.WithValue(r.Context(), userPhoneKey, phone)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserPhone возвращает телефон клиентки из контекста запроса
func UserPhone(r *http.Request) string {
	phone, _ := r.Context().Value(userPhoneKey).(string)
	return phone
}

// Admin требует совпадения ключа оператора
func Admin(adminKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if adminKey == "" || r.Header.Get(headerAdminKey) != adminKey {
				handlers.RespondError(w, http.StatusForbidden, msgAdminOnly)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
