package middleware

import (
	"context"
	"net/http"

	"storefront-backend/internal/domain"
	"storefront-backend/pkg/logger"
	"storefront-backend/pkg/utils"
)

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := utils.TokenFromRequest(r)
		if tokenString == "" {
			utils.WriteError(w, http.StatusUnauthorized, "Unauthorized: no token provided")
			return
		}

		claims, err := utils.ValidateJWT(tokenString)
		if err != nil {
			logger.WithContext(r.Context()).Debug().Err(err).Msg("Auth: token rejected")
			utils.WriteError(w, http.StatusUnauthorized, "Unauthorized: invalid token")
			return
		}

		// Role comes from the token; no store lookup per request.
		sub, _ := claims["sub"].(string)
		email, _ := claims["email"].(string)
		role, _ := claims["role"].(string)

		user := &domain.User{
			ID:    sub,
			Email: email,
			Role:  role,
		}

		ctx := context.WithValue(r.Context(), domain.UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
