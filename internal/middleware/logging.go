package middleware

import (
	"net/http"
	"time"

	"medications-api/internal/metrics"
	"medications-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLog loguea cada request (method, path, status, duration_ms,
// request_id) y, si rec != nil, lo registra en métricas por ruta.
// El nivel depende del status: 5xx error, 4xx warn, resto info.
func AccessLog(log logger.Logger, rec metrics.Recorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			elapsed := time.Since(start)

			if rec != nil {
				rec.RecordRequest(r.Method, routePattern(r), status, elapsed)
			}

			fields := map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": float64(elapsed.Microseconds()) / 1000,
				"request_id":  requestID(r),
			}
			switch {
			case status >= 500:
				log.Error("http_request", fields)
			case status >= 400:
				log.Warn("http_request", fields)
			default:
				log.Info("http_request", fields)
			}
		})
	}
}

// routePattern evita cardinalidad alta en métricas: usa el patrón de chi
// (/medicamentos/{id}) y agrupa lo que no matcheó.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
