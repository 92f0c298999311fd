package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"horoscope-api/internal/dto"
)

// production controls whether detailed error messages are included in
// responses. Set once at startup.
var production bool

// SetProductionMode toggles suppression of detailed error messages.
func SetProductionMode(enabled bool) {
	production = enabled
}

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes a JSON error response. The detailed message is
// omitted in production mode.
func WriteErrorResponse(w http.ResponseWriter, status int, errMsg string, message string) {
	resp := dto.ErrorResponse{Error: errMsg}
	if !production {
		resp.Message = message
	}
	WriteJSONResponse(w, status, resp)
}

// DecodeJSONRequest decodes the request body into dst, rejecting unknown
// fields.
func DecodeJSONRequest(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}
