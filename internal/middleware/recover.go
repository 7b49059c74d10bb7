package middleware

import (
	"net/http"
	"runtime/debug"

	"medications-api/internal/platform/logger"
)

const msgUnexpected = "Ocorreu um erro inesperado no servidor."

// Recover es el último recurso: un panic en un handler se loguea con stack y
// el cliente recibe 500 con un mensaje fijo.
// Reemplaza a chimw.Recoverer porque necesitamos body JSON y nuestro logger.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					// net/http lo usa para cortar la respuesta; no es un error nuestro
					panic(rec)
				}

				log.Error("unhandled panic", map[string]any{
					"panic":      rec,
					"method":     r.Method,
					"path":       r.URL.Path,
					"request_id": requestID(r),
					"stack":      string(debug.Stack()),
				})

				writeJSON(w, http.StatusInternalServerError, message{Message: msgUnexpected})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
