package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/abhisek/thermoviz/internal/apperr"
	"github.com/abhisek/thermoviz/internal/logger"
)

// maxBodyBytes caps request bodies; every payload here is a few numbers.
const maxBodyBytes = 64 << 10

// writeJSON encodes v before touching the response, so an encoding failure
// still reaches the client as an error body instead of an empty 200.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		handleError(w, r, encodeError(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.FromContext(r.Context()).Warn("write response: %v", err)
	}
}

// encodeError maps a failed encode to an API error. Values JSON cannot carry
// (NaN, ±Inf) come from inputs too large to compute with.
func encodeError(err error) error {
	var uv *json.UnsupportedValueError
	if errors.As(err, &uv) {
		ae := apperr.Validation("request", "values are too large to produce a finite result")
		ae.Err = err
		return ae
	}
	return apperr.Internal(err)
}

// handleError writes err as {"error":{"code","message"}}.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())
	appErr := apperr.From(err)

	if appErr.Status >= 500 {
		log.Error("server error: %v", appErr)
	} else {
		log.Debug("client error: %v", appErr)
	}

	writeJSON(w, r, appErr.Status, map[string]any{
		"error": map[string]any{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}

// decodeJSON reads the request body into v.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.BadRequest("request body is empty", err)
		}
		return apperr.BadRequest("invalid JSON body", err)
	}
	return nil
}

func errNotFoundRoute(path string) error {
	return apperr.NotFound("route", path)
}
