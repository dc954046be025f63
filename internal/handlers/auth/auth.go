package auth

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"gitlab.com/cloudjudge-2025.net/internal/config"
	"gitlab.com/cloudjudge-2025.net/internal/core/services/auth"
	"gitlab.com/cloudjudge-2025.net/internal/domain"
	"gitlab.com/cloudjudge-2025.net/internal/handlers"
	"gitlab.com/cloudjudge-2025.net/internal/handlers/response"
)

type ServiceDependencies struct {
	GGAuthService    auth.IAuthService
	LocalAuthService auth.IAuthService
}

// GoogleUser decodes the Google userinfo API response
type GoogleUser struct {
	ID    string `json:"sub"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Handler struct {
	providerHandler map[domain.Provider]auth.IAuthService
	oauthConfig     *oauth2.Config
	middleware      *handlers.MiddlewareProvider
}

func NewHandler(ggCfg *config.GGAuthConfig, middleware *handlers.MiddlewareProvider) *Handler {
	return &Handler{
		providerHandler: make(map[domain.Provider]auth.IAuthService),
		oauthConfig: &oauth2.Config{
			ClientID:     ggCfg.ClientID,
			ClientSecret: ggCfg.ClientSecret,
			RedirectURL:  ggCfg.RedirectURL,
			Scopes:       []string{"profile", "email"},
			Endpoint:     google.Endpoint,
		},
		middleware: middleware,
	}
}

func (h *Handler) RegisterRoutes(router *mux.Router, svcDep *ServiceDependencies) {
	h.providerHandler[domain.ProviderGoogle] = svcDep.GGAuthService
	h.providerHandler[domain.ProviderLocal] = svcDep.LocalAuthService

	router.HandleFunc("/health", HealthHandler).Methods("GET")
	router.HandleFunc("/auth/register", h.RegisterHandler).Methods("POST")
	router.HandleFunc("/auth/token", h.LoginHandler).Methods("POST")
	router.HandleFunc("/auth/google", h.GoogleLoginHandler).Methods("GET")
	router.HandleFunc("/auth/callback", h.GoogleCallbackHandler).Methods("GET")
	router.Handle("/me", h.middleware.JWTMiddleware(http.HandlerFunc(MeHandler))).Methods("GET")
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	response.WriteSuccess(w, map[string]string{
		"status":  "healthy",
		"service": "cloudjudge",
	})
}

// RegisterHandler creates a local account and returns a token
func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, response.ErrorMessage{
			Message:    "Invalid request",
			StatusCode: http.StatusBadRequest,
		})
		return
	}

	token, err := h.providerHandler[domain.ProviderLocal].Register(r.Context(), &domain.Users{
		UserName:     req.Username,
		Email:        &req.Email,
		PasswordHash: &req.Password,
	})
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteSuccess(w, domain.LoginResponse{
		Token:     token,
		TokenType: "bearer",
	})
}

// LoginHandler exchanges local credentials for a token
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, response.ErrorMessage{
			Message:    "Invalid request",
			StatusCode: http.StatusBadRequest,
		})
		return
	}

	token, err := h.providerHandler[domain.ProviderLocal].Login(r.Context(), &domain.Users{
		UserName:     req.Username,
		PasswordHash: &req.Password,
	})
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteSuccess(w, domain.LoginResponse{
		Token:     token,
		TokenType: "bearer",
	})
}

// GoogleLoginHandler redirects the user to Google OAuth2 login
func (h *Handler) GoogleLoginHandler(w http.ResponseWriter, r *http.Request) {
	url := h.oauthConfig.AuthCodeURL("randomstate")
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// GoogleCallbackHandler handles the Google OAuth2 callback
func (h *Handler) GoogleCallbackHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "No code in URL", http.StatusBadRequest)
		return
	}

	token, err := h.oauthConfig.Exchange(ctx, code)
	if err != nil {
		http.Error(w, "Failed to get token", http.StatusInternalServerError)
		return
	}

	client := h.oauthConfig.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v3/userinfo")
	if err != nil {
		http.Error(w, "Failed to get user info", http.StatusInternalServerError)
		return
	}
	defer resp.Body.Close()

	var googleUser GoogleUser
	if err := json.NewDecoder(resp.Body).Decode(&googleUser); err != nil {
		http.Error(w, "Failed to decode user info", http.StatusInternalServerError)
		return
	}

	tokenStr, err := h.providerHandler[domain.ProviderGoogle].Login(ctx, &domain.Users{
		GoogleID:     &googleUser.ID,
		Email:        &googleUser.Email,
		AuthProvider: string(domain.ProviderGoogle),
	})
	if err != nil {
		response.WriteError(w, response.ErrorMessage{
			Message:    err.Error(),
			StatusCode: http.StatusUnauthorized,
		})
		return
	}

	response.WriteSuccess(w, domain.LoginResponse{
		Token:     tokenStr,
		TokenType: "bearer",
	})
}

// MeHandler returns the authenticated user
func MeHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := handlers.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "User not found", http.StatusUnauthorized)
		return
	}
	response.WriteSuccess(w, NewUserResponse(user))
}
