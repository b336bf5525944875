// internal/app/system/httpjson/httpjson.go

// Package httpjson holds the request/response helpers shared by the API
// handlers. Every non-2xx response carries a human-readable message
// field; store faults are logged and never echoed to the client.
package httpjson

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// maxBodyBytes caps request bodies. The largest legitimate payload here
// is a discussion post; 1 MiB is generous.
const maxBodyBytes = 1 << 20

// errorResponse is the uniform failure envelope.
type errorResponse struct {
	Message string `json:"message"`
}

// Decode reads a JSON body into dst. It rejects oversized bodies and
// trailing garbage after the first JSON value.
func Decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return err
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

// Respond writes v as JSON with the given status.
func Respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes the uniform failure envelope.
func Error(w http.ResponseWriter, status int, message string) {
	Respond(w, status, errorResponse{Message: message})
}

// BadRequest, NotFound, Forbidden, Unauthorized and Conflict name the
// client-error categories the handlers use.
func BadRequest(w http.ResponseWriter, message string)   { Error(w, http.StatusBadRequest, message) }
func NotFound(w http.ResponseWriter, message string)     { Error(w, http.StatusNotFound, message) }
func Forbidden(w http.ResponseWriter, message string)    { Error(w, http.StatusForbidden, message) }
func Unauthorized(w http.ResponseWriter, message string) { Error(w, http.StatusUnauthorized, message) }
func Conflict(w http.ResponseWriter, message string)     { Error(w, http.StatusConflict, message) }

// ServerError logs the underlying fault and returns an opaque 500 to
// the caller.
func ServerError(w http.ResponseWriter, log *zap.Logger, operation string, err error) {
	if log != nil {
		log.Error(operation, zap.Error(err))
	}
	Error(w, http.StatusInternalServerError, "An unexpected error occurred.")
}
