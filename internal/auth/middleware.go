package auth

import (
	"net/http"

	"flight-service/internal/utils"
)

// Middleware authenticates requests with a bearer JWT. Verified claims go
// into the request context; anything else is a 401.
func Middleware(secret string, cache *TokenCache) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rawToken, err := ExtractTokenFromRequest(r)
			if err != nil {
				utils.ErrorResponse(w, http.StatusUnauthorized, err.Error())
				return
			}

			claims, ok := cache.Get(r.Context(), rawToken)
			if !ok {
				claims, err = ParseToken(secret, rawToken)
				if err != nil {
					utils.ErrorResponse(w, http.StatusUnauthorized, "invalid token")
					return
				}
				cache.Set(r.Context(), rawToken, claims)
			}

			next.ServeHTTP(w, r.WithContext(SetClaims(r.Context(), claims)))
		})
	}
}

// RequireStaff rejects authenticated non-staff users with a 403. It must
// run after Middleware.
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFrom(r.Context())
		if claims == nil {
			utils.ErrorResponse(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if !claims.IsStaff {
			utils.ErrorResponse(w, http.StatusForbidden, "admin privileges required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
