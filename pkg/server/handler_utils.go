package server

import (
	"encoding/json"
	"net/http"
)

// APIError represents an error response body.
type APIError struct {
	Detail string `json:"detail"`
}

// encodeJSON encodes data into JSON and writes it to the response writer.
func encodeJSON(w http.ResponseWriter, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(data)
}

// decodeJSON decodes a JSON request body into the provided data struct.
func decodeJSON(r *http.Request, data interface{}) error {
	return json.NewDecoder(r.Body).Decode(&data)
}

// renderError renders an error response.
func renderError(w http.ResponseWriter, err error, status int) {
	if status >= http.StatusInternalServerError {
		log.Error(err)
	}
	http.Error(w, err.Error(), status)
}

// renderDetail renders a fixed-message error body in the shape clients of
// the annotate contract expect.
func renderDetail(w http.ResponseWriter, detail string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(APIError{Detail: detail})
}
