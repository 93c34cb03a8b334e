// Package httpx provides HTTP response utilities.
package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
)

// Sentinel errors for domain layer.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
)

// RespondError maps domain errors to HTTP responses.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		Error(w, http.StatusNotFound, Message(err, ErrNotFound))
	case errors.Is(err, ErrValidation):
		Error(w, http.StatusBadRequest, Message(err, ErrValidation))
	case errors.Is(err, ErrConflict):
		Error(w, http.StatusConflict, Message(err, ErrConflict))
	default:
		Error(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Message strips the sentinel prefix added by fmt.Errorf("%w: ...") so that
// clients see only the human readable part.
func Message(err, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if idx := strings.Index(msg, prefix); idx >= 0 {
		return msg[idx+len(prefix):]
	}
	return msg
}

// Fail logs errors that are not client mistakes and writes the mapped
// response.
func Fail(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	if logger != nil && !errors.Is(err, ErrValidation) && !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrConflict) {
		logger.Error(op+" failed", slog.Any("error", err))
	}
	RespondError(w, err)
}

// BadBody answers a request whose JSON body could not be decoded.
func BadBody(w http.ResponseWriter) {
	Error(w, http.StatusBadRequest, "Invalid request body")
}
