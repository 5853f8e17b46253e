package utils

import (
	"encoding/json"
	"net/http"

	"github.com/SSRGNG/ssrg-sub002/internal/models"
)

// JSON writes a JSON response with status code
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// JSONError writes the uniform error envelope
func JSONError(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, models.ErrorResponse{Code: code, Message: message})
}

// JSONValidationError writes a 422 with the field error details
func JSONValidationError(w http.ResponseWriter, details []models.ValidationErrorDetail) {
	JSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{
		Code:    "validation_failed",
		Message: "Validation failed",
		Details: details,
	})
}
