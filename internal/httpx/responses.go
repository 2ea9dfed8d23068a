package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse is the body of a single-message failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationResponse lists every rule a payload violated.
type ValidationResponse struct {
	Errors []string `json:"errors"`
}

// MessageResponse carries a plain confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

const internalErrorMessage = "Internal server error"

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", slog.String("err", err.Error()))
	}
}

func JSONError(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, ErrorResponse{Error: message})
}

func JSONErrors(w http.ResponseWriter, statusCode int, errs []string) {
	if errs == nil {
		errs = []string{}
	}
	JSON(w, statusCode, ValidationResponse{Errors: errs})
}

func JSONMessage(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, MessageResponse{Message: message})
}

// InternalError is the catch-all responder for unexpected failures. The
// error is logged with the request id; the client only sees a generic body.
func InternalError(w http.ResponseWriter, r *http.Request, err error) {
	LoggerFrom(r.Context()).ErrorContext(r.Context(), "request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("err", err.Error()),
	)
	JSONError(w, http.StatusInternalServerError, internalErrorMessage)
}
