package middleware

import (
	"net/http"
	"strings"

	"cinema-users/pkg/utils"

	"go.uber.org/zap"
)

// Auth requires a valid "Bearer <jwt>" header and stores the token subject
// as the user id in the request context.
func Auth(tokens *utils.TokenIssuer, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			scheme, token, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			userID, err := tokens.Parse(token)
			if err != nil {
				logger.Warn("Invalid or expired token",
					zap.Error(err),
					zap.String("request_id", utils.GetRequestIDFromContext(r.Context())))
				utils.ResponseUnauthorized(w, err.Error())
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.SetUserContext(r.Context(), userID)))
		})
	}
}
