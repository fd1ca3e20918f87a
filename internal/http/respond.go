package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/abuhuraira-73/chromaic-backend/internal/repository"
	"github.com/abuhuraira-73/chromaic-backend/internal/service"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error:   message,
		Code:    code,
		Details: "",
	})
}

// handleServiceError maps service and repository errors to HTTP status codes
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrOrderNotFound),
		errors.Is(err, repository.ErrCartNotFound),
		errors.Is(err, repository.ErrItemNotFound),
		errors.Is(err, repository.ErrProductNotFound),
		errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrPaymentNotFound):
		respondError(w, http.StatusNotFound, "not_found", err.Error())

	case errors.Is(err, service.ErrNotOrderOwner),
		errors.Is(err, service.ErrNotPaymentOwner),
		errors.Is(err, service.ErrNotOrderPayer):
		respondError(w, http.StatusForbidden, "forbidden", err.Error())

	case errors.Is(err, service.ErrNoOrderItems),
		errors.Is(err, service.ErrOrderAlreadyPaid),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrCardDeclined),
		errors.Is(err, service.ErrInvalidCardNumber):
		respondError(w, http.StatusBadRequest, "invalid_request", err.Error())

	default:
		respondError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
