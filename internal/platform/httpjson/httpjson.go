// Package httpjson: helpers comunes de los handlers (respuesta JSON, errores, params).
package httpjson

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"customer-contract-portal/internal/platform/apperr"

	"github.com/go-chi/chi/v5"
)

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error traduce un error del core al status HTTP (404/422/400/500).
func Error(w http.ResponseWriter, err error) {
	Write(w, apperr.HTTPStatus(err), errorResponse{
		Error: apperr.PublicMessage(err),
		Kind:  string(apperr.KindOf(err)),
	})
}

// Decode lee un body JSON estricto (rechaza campos desconocidos).
func Decode(r *http.Request, dst any) error {
	return decode(r, dst, false)
}

// DecodeOptional es Decode para endpoints de edición: un body vacío cuenta
// como {} y deja dst sin tocar.
func DecodeOptional(r *http.Request, dst any) error {
	return decode(r, dst, true)
}

func decode(r *http.Request, dst any, optional bool) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			if optional {
				return nil
			}
			return apperr.Validation("request body is required")
		}
		return apperr.Validation("invalid json: " + err.Error())
	}
	return nil
}

// IDParam parsea un id entero de la ruta.
func IDParam(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(chi.URLParam(r, name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.InvalidArgument(name + " must be a positive integer")
	}
	return id, nil
}

// QueryID parsea un filtro entero opcional (?customer_id=...).
func QueryID(r *http.Request, name string) (*int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, apperr.InvalidArgument(name + " must be an integer")
	}
	return &id, nil
}

// QueryString devuelve nil si el parámetro no viene o viene vacío.
func QueryString(r *http.Request, name string) *string {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return nil
	}
	return &v
}

// QueryTime acepta RFC3339 (y fecha sola YYYY-MM-DD).
func QueryTime(r *http.Request, name string) (*time.Time, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return &t, nil
	}
	return nil, apperr.InvalidArgument(name + " must be RFC3339")
}

// Offset acepta `skip` (nombre histórico de la API) o `offset`.
func Offset(r *http.Request) string {
	q := r.URL.Query()
	if v := q.Get("skip"); v != "" {
		return v
	}
	return q.Get("offset")
}
