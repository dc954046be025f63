package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"gitlab.com/cloudjudge-2025.net/internal/core/ports/primary"
	"gitlab.com/cloudjudge-2025.net/internal/core/ports/secondary"
	"gitlab.com/cloudjudge-2025.net/internal/domain"
)

type contextKey string

const userContextKey contextKey = "currentUser"

type MiddlewareProvider struct {
	jwtProvider primary.JWTService
	userPort    secondary.UserPort
}

func New(jwtProvider primary.JWTService, userPort secondary.UserPort) *MiddlewareProvider {
	return &MiddlewareProvider{
		jwtProvider: jwtProvider,
		userPort:    userPort,
	}
}

// JWTMiddleware verifies the bearer token and resolves the authenticated
// user row into the request context.
func (m *MiddlewareProvider) JWTMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Authorization header missing", http.StatusUnauthorized)
			return
		}

		// Extract token from "Bearer <token>"
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		valid, err := m.jwtProvider.VerifyTokenHMAC(r.Context(), tokenString, jwt.SigningMethodHS256.Name)
		if err != nil || !valid {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		payload, err := m.jwtProvider.DecodeTokenPayload(r.Context(), tokenString)
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		user, err := m.userPort.GetByUserName(r.Context(), payload.Username)
		if err != nil || user == nil {
			http.Error(w, "User not found", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFromContext returns the user resolved by JWTMiddleware.
func UserFromContext(ctx context.Context) (*domain.Users, bool) {
	user, ok := ctx.Value(userContextKey).(*domain.Users)
	return user, ok
}
