package submissions

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/cloudjudge-2025.net/internal/core/services/submission"
	"gitlab.com/cloudjudge-2025.net/internal/handlers"
	"gitlab.com/cloudjudge-2025.net/internal/handlers/response"
)

type Handler struct {
	submissionService submission.ISubmissionService
	middleware        *handlers.MiddlewareProvider
}

func NewHandler(submissionService submission.ISubmissionService, middleware *handlers.MiddlewareProvider) *Handler {
	return &Handler{
		submissionService: submissionService,
		middleware:        middleware,
	}
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.Handle("/api/problems/{problemId}/submit",
		h.middleware.JWTMiddleware(http.HandlerFunc(h.SubmitHandler))).Methods("POST")
	router.Handle("/api/submissions",
		h.middleware.JWTMiddleware(http.HandlerFunc(h.ListHandler))).Methods("GET")
	router.Handle("/api/submissions/{submissionId}",
		h.middleware.JWTMiddleware(http.HandlerFunc(h.GetHandler))).Methods("GET")
	router.Handle("/api/problems/{problemId}/submissions",
		h.middleware.JWTMiddleware(http.HandlerFunc(h.ListByProblemHandler))).Methods("GET")
	router.Handle("/api/stats",
		h.middleware.JWTMiddleware(http.HandlerFunc(h.StatsHandler))).Methods("GET")
}

// SubmitHandler judges submitted code synchronously and returns the
// persisted submission with its verdict.
func (h *Handler) SubmitHandler(w http.ResponseWriter, r *http.Request) {
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

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, response.ErrorMessage{
			Message:    "Invalid request",
			StatusCode: http.StatusBadRequest,
		})
		return
	}

	sub, err := h.submissionService.Submit(r.Context(), user.ID, problemID, req.Code)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}
	response.WriteSuccess(w, NewSubmissionResponse(sub))
}

func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := handlers.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "User not found", http.StatusUnauthorized)
		return
	}

	subs, err := h.submissionService.ListByUser(r.Context(), user.ID)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}
	response.WriteSuccess(w, NewSubmissionListResponse(subs))
}

func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := handlers.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "User not found", http.StatusUnauthorized)
		return
	}

	submissionID, err := uuid.Parse(mux.Vars(r)["submissionId"])
	if err != nil {
		response.WriteError(w, response.ErrorMessage{
			Message:    "Invalid submission id",
			StatusCode: http.StatusBadRequest,
		})
		return
	}

	sub, err := h.submissionService.Get(r.Context(), user.ID, submissionID)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}
	response.WriteSuccess(w, NewSubmissionResponse(sub))
}

func (h *Handler) ListByProblemHandler(w http.ResponseWriter, r *http.Request) {
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

	subs, err := h.submissionService.ListByUserAndProblem(r.Context(), user.ID, problemID)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}
	response.WriteSuccess(w, NewSubmissionListResponse(subs))
}

func (h *Handler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := handlers.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "User not found", http.StatusUnauthorized)
		return
	}

	stats, err := h.submissionService.StatsByUser(r.Context(), user.ID)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}
	response.WriteSuccess(w, stats)
}
