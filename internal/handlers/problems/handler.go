package problems

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/cloudjudge-2025.net/internal/core/services/problem"
	"gitlab.com/cloudjudge-2025.net/internal/domain"
	"gitlab.com/cloudjudge-2025.net/internal/handlers"
	"gitlab.com/cloudjudge-2025.net/internal/handlers/response"
)

type Handler struct {
	problemService problem.IProblemService
	middleware     *handlers.MiddlewareProvider
}

func NewHandler(problemService problem.IProblemService, middleware *handlers.MiddlewareProvider) *Handler {
	return &Handler{
		problemService: problemService,
		middleware:     middleware,
	}
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/problems", h.ListHandler).Methods("GET")
	router.HandleFunc("/api/problems/{problemId}", h.GetHandler).Methods("GET")
	router.Handle("/api/problems",
		h.middleware.JWTMiddleware(http.HandlerFunc(h.CreateHandler))).Methods("POST")
	router.Handle("/api/problems/{problemId}",
		h.middleware.JWTMiddleware(http.HandlerFunc(h.UpdateHandler))).Methods("PUT")
}

// ListHandler returns the catalog without test cases.
func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	problems, err := h.problemService.List(r.Context())
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	resp := make([]ProblemResponse, 0, len(problems))
	for _, p := range problems {
		resp = append(resp, NewProblemResponse(p, false))
	}
	response.WriteSuccess(w, resp)
}

func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	problemID, err := uuid.Parse(mux.Vars(r)["problemId"])
	if err != nil {
		response.WriteError(w, response.ErrorMessage{
			Message:    "Invalid problem id",
			StatusCode: http.StatusBadRequest,
		})
		return
	}

	p, err := h.problemService.Get(r.Context(), problemID)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}
	response.WriteSuccess(w, NewProblemResponse(p, true))
}

func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := handlers.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "User not found", http.StatusUnauthorized)
		return
	}

	var req CreateProblemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, response.ErrorMessage{
			Message:    "Invalid request",
			StatusCode: http.StatusBadRequest,
		})
		return
	}

	p, err := h.problemService.Create(r.Context(), user.ID, &domain.Problem{
		Title:       req.Title,
		Description: req.Description,
		Difficulty:  req.Difficulty,
		TestCases:   string(req.TestCases),
	})
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(NewProblemResponse(p, true))
}

func (h *Handler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := handlers.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "User not found", http.StatusUnauthorized)
		return
	}

	problemID, err := uuid.Parse(mux.Vars(r)["problemId"])
	if err != nil {
		response.WriteError(w, response.ErrorMessage{
			Message:    "Invalid problem id",
			StatusCode: http.StatusBadRequest,
		})
		return
	}

	var req UpdateProblemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, response.ErrorMessage{
			Message:    "Invalid request",
			StatusCode: http.StatusBadRequest,
		})
		return
	}

	p, err := h.problemService.Update(r.Context(), user.ID, problemID, req.Params())
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}
	response.WriteSuccess(w, NewProblemResponse(p, true))
}
