package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/pontohr/backend-go/internal/domain/employee"
	"github.com/pontohr/backend-go/internal/handler/http/response"
)

// RequireManagement requires the admin or hr role.
func RequireManagement(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, employee.ErrUnauthorized)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || !employee.Role(role).IsManagement() {
			response.HandleError(w, employee.ErrUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
