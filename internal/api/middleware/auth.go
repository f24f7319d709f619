package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avalonwc/AWC-BookingService/internal/api/handlers"
)

const (
	adminTokenHeader = "X-Admin-Token"

	msgMissingToken = "missing admin token"
	msgInvalidToken = "invalid admin token"
)

// AdminAuth middleware для админских ручек: требует совпадения заголовка
// X-Admin-Token с настроенным токеном
func AdminAuth(token string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(adminTokenHeader)
			if got == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				handlers.RespondForbidden(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
