// Package response writes the uniform JSON envelope every endpoint
// returns: {success, message, data, errors?, error?}.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/muhamad-rafli/inventory-api/internal/errors"
)

type Envelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    any      `json:"data"`
	Errors  []string `json:"errors,omitempty"`
	Error   string   `json:"error,omitempty"`
}

func WriteJson(w http.ResponseWriter, statusCode int, envelope Envelope) error {

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(envelope)
}

func Success(w http.ResponseWriter, statusCode int, message string, data any) {
	WriteJson(w, statusCode, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ValidationErrors answers 400 with the full list of field messages.
// No transaction has been opened at this point.
func ValidationErrors(w http.ResponseWriter, errs []string) {
	WriteJson(w, http.StatusBadRequest, Envelope{
		Success: false,
		Message: "Validation errors",
		Errors:  errs,
	})
}

// Error maps an AppError to its status code. Server-side failures answer
// with the generic message and surface the raw cause in the error field,
// as the legacy API did. Anything unrecognized is a 500.
func Error(w http.ResponseWriter, err error) {

	appErr, ok := errors.IsAppError(err)
	if !ok {
		WriteJson(w, http.StatusInternalServerError, Envelope{
			Message: "Internal Server Error",
			Error:   err.Error(),
		})
		return
	}

	envelope := Envelope{
		Success: false,
		Message: appErr.Message,
	}

	if appErr.StatusCode >= http.StatusInternalServerError {
		envelope.Message = "Internal Server Error"

		if appErr.Err != nil {
			envelope.Error = appErr.Err.Error()
		} else {
			envelope.Error = appErr.Message
		}
	}

	WriteJson(w, appErr.StatusCode, envelope)
}
