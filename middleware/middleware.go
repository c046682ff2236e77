package middleware

import (
	"net/http"
	"strings"

	"construction-tracker/backend/logging"
	"construction-tracker/backend/utils"
)

// Auth validates the bearer token and checks the role claim against the
// allowed list before forwarding. The role and email claims are placed on
// the request headers for handlers that gate restricted fields.
func Auth(next http.Handler, allowedRoles ...string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Missing Authorization header", http.StatusUnauthorized)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenStr)
		if err != nil {
			logging.Logger.Warnf("Event ID: AUTH_INVALID_TOKEN, Description: Invalid token on %s %s: %v", r.Method, r.URL.Path, err)
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		if claims.Role == "" {
			http.Error(w, "Missing role in token", http.StatusUnauthorized)
			return
		}

		if len(allowedRoles) > 0 && !contains(allowedRoles, claims.Role) {
			logging.Logger.Warnf("Event ID: AUTH_FORBIDDEN, Description: Role %s not allowed on %s %s", claims.Role, r.Method, r.URL.Path)
			http.Error(w, "Access forbidden: insufficient permissions", http.StatusForbidden)
			return
		}

		r.Header.Set("Role", claims.Role)
		r.Header.Set("Email", claims.Email)
		next.ServeHTTP(w, r)
	})
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
