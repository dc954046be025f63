package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"gitlab.com/cloudjudge-2025.net/internal/static/errs"
)

type ErrorMessage struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

func WriteError(w http.ResponseWriter, err ErrorMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)
	_ = json.NewEncoder(w).Encode(err)
}

func WriteSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}

// WriteServiceError maps the service sentinels onto HTTP status codes.
func WriteServiceError(w http.ResponseWriter, err error) {
	WriteError(w, ErrorMessage{
		Message:    err.Error(),
		StatusCode: statusFor(err),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.InvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ProblemNotFound),
		errors.Is(err, errs.SubmissionNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.NotProblemCreator),
		errors.Is(err, errs.NotSubmissionOwner):
		return http.StatusForbidden
	case errors.Is(err, errs.UsernameTaken),
		errors.Is(err, errs.EmailTaken),
		errors.Is(err, errs.EmailRequired),
		errors.Is(err, errs.EmptyCode),
		errors.Is(err, errs.InvalidTestCases):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
