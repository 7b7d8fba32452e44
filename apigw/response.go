package apigw

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// GatewayResponse is the body written for requests rejected before reaching
// a handler.
type GatewayResponse struct {
	Message string `json:"message"`
}

// ResponseJSON encodes v as JSON and writes it with the given status code.
// If encoding fails, 500 Internal Server Error is written instead.
func ResponseJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(buf.Bytes())
}

// BindJSON decodes the request body as JSON into v, rejecting unknown
// fields and trailing data.
func BindJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return err
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("unexpected trailing data after JSON value")
	}

	return nil
}

// gatewayError writes a GatewayResponse carrying the status text.
func gatewayError(w http.ResponseWriter, code int) {
	ResponseJSON(w, code, GatewayResponse{Message: http.StatusText(code)})
}
