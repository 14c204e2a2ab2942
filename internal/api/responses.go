package api

import (
	"encoding/json"
	"net/http"
)

// JSONResponse is a response builder for JSON responses.
type JSONResponse struct {
	w          http.ResponseWriter
	statusCode int
	headers    map[string]string
}

// NewJSONResponse creates a new JSONResponse instance.
func NewJSONResponse(w http.ResponseWriter) *JSONResponse {
	return &JSONResponse{
		w:       w,
		headers: make(map[string]string),
	}
}

// WithHeader adds a header to the response.
func (r *JSONResponse) WithHeader(key string, value string) *JSONResponse {
	r.headers[key] = value
	return r
}

// WithStatusCode sets the status code of the response.
func (r *JSONResponse) WithStatusCode(code int) *JSONResponse {
	r.statusCode = code
	return r
}

// Send writes data as JSON. A zero status code means 200.
func (r *JSONResponse) Send(data any) {
	statusCode := r.statusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}

	r.w.Header().Set("Content-Type", "application/json")
	for k, v := range r.headers {
		r.w.Header().Set(k, v)
	}

	jsonBytes, err := json.Marshal(data)
	if err != nil {
		r.w.WriteHeader(http.StatusInternalServerError)
		_, _ = r.w.Write([]byte(`{"error":"failed to marshal response"}`))
		return
	}

	r.w.WriteHeader(statusCode)
	_, _ = r.w.Write(jsonBytes)
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SchemaSummary describes one served schema.
type SchemaSummary struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
