package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"customer-contract-portal/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Recoverer reemplaza a chimw.Recoverer: loguea el panic con el logger de la
// app y responde 500 en JSON, igual que el resto de los errores.
func Recoverer(log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Error("panic recovered", map[string]any{
					"request_id": chimw.GetReqID(r.Context()),
					"method":     r.Method,
					"path":       r.URL.Path,
					"panic":      fmt.Sprint(rec),
					"stack":      string(debug.Stack()),
				})
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":"internal error","kind":"storage_error"}` + "\n"))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
