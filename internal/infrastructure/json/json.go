// Package json centralizes JSON request decoding and response writing so every
// handler produces the same envelope. Error responses follow the shape
// {statusCode, message, error} where error carries the HTTP status text.
package json

import (
	"encoding/json"
	"io"
	"net/http"
)

const maxBodyBytes = 1 << 20 // 1MB

type errorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}

// Unmarshal decodes an already-buffered payload into v.
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Read decodes the request body into v, enforcing a body size cap.
func Read(r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

// ReadBytes drains the request body so it can be inspected before decoding.
func ReadBytes(r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	defer r.Body.Close()
	return io.ReadAll(r.Body)
}

// Write sends data as JSON with the given status code.
func Write(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(data)
}

// WriteError sends the standard error envelope. The err parameter is kept for
// call sites that log it alongside; only message reaches the client.
func WriteError(w http.ResponseWriter, status int, err error, message string) {
	_ = Write(w, status, errorResponse{
		StatusCode: status,
		Message:    message,
		Error:      http.StatusText(status),
	})
}

// WriteValidationError maps a validation failure to 400 Bad Request, exposing
// the validation message verbatim.
func WriteValidationError(w http.ResponseWriter, err error) {
	WriteError(w, http.StatusBadRequest, err, err.Error())
}

// WriteInternalError maps an unexpected failure to 500 without leaking the
// underlying error detail to the client.
func WriteInternalError(w http.ResponseWriter, err error) {
	WriteError(w, http.StatusInternalServerError, err, "Internal server error")
}
