package utils

import (
	"encoding/json"
	"log"
	"net/http"

	"fuel-console/pkg/apperror"
)

// JSON writes data as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[HTTP] Failed to encode response: %v", err)
	}
}

// Error writes err as an AppError body. Errors that are not AppErrors become
// a 500.
func Error(w http.ResponseWriter, err error) {
	appErr := apperror.GetAppError(err)
	JSON(w, appErr.Code, appErr)
}

// DecodeJSON reads the request body into dst, returning a 400 AppError on
// malformed input.
func DecodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperror.NewBadRequestError("Invalid request body: " + err.Error())
	}
	return nil
}
