package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"gitlab.com/cloudjudge-2025.net/internal/adapter/crypto"
	"gitlab.com/cloudjudge-2025.net/internal/domain"
	"gitlab.com/cloudjudge-2025.net/internal/handlers"
)

type fakeUserPort struct {
	users map[string]*domain.Users
}

func (f *fakeUserPort) Create(ctx context.Context, user *domain.Users) error { return nil }
func (f *fakeUserPort) Get(ctx context.Context, id uuid.UUID) (*domain.Users, error) {
	return nil, nil
}
func (f *fakeUserPort) GetByEmail(ctx context.Context, email string) (*domain.Users, error) {
	return nil, nil
}
func (f *fakeUserPort) GetByUserName(ctx context.Context, userName string) (*domain.Users, error) {
	return f.users[userName], nil
}
func (f *fakeUserPort) GetByGoogleID(ctx context.Context, googleID string) (*domain.Users, error) {
	return nil, nil
}

func TestJWTMiddleware(t *testing.T) {
	jwtProvider := &crypto.JWTServiceImpl{HMACSecretKey: "test-secret", TokenTTL: time.Minute}
	alice := &domain.Users{ID: uuid.New(), UserName: "alice", IsActive: true}
	userPort := &fakeUserPort{users: map[string]*domain.Users{"alice": alice}}
	middleware := handlers.New(jwtProvider, userPort)

	var gotUser *domain.Users
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = handlers.UserFromContext(r.Context())
	})
	protected := middleware.JWTMiddleware(next)

	token, err := jwtProvider.GenerateTokenHMAC(context.Background(), jwt.SigningMethodHS256.Name,
		map[string]interface{}{"username": "alice"})
	if err != nil {
		t.Fatalf("GenerateTokenHMAC: %v", err)
	}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantUser   bool
	}{
		{"missing header", "", http.StatusUnauthorized, false},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized, false},
		{"unknown user", "Bearer " + mustToken(t, jwtProvider, "mallory"), http.StatusUnauthorized, false},
		{"valid token", "Bearer " + token, http.StatusOK, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUser = nil
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			protected.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantUser && (gotUser == nil || gotUser.UserName != "alice") {
				t.Errorf("user in context = %v, want alice", gotUser)
			}
			if !tt.wantUser && gotUser != nil {
				t.Errorf("user in context = %v, want none", gotUser)
			}
		})
	}
}

func mustToken(t *testing.T, jwtProvider *crypto.JWTServiceImpl, username string) string {
	t.Helper()
	token, err := jwtProvider.GenerateTokenHMAC(context.Background(), jwt.SigningMethodHS256.Name,
		map[string]interface{}{"username": username})
	if err != nil {
		t.Fatalf("GenerateTokenHMAC: %v", err)
	}
	return token
}
