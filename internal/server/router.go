// Package server assembles the HTTP router and runs it with graceful shutdown.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"portfolio-api/internal/correlation"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouteRegistrar is implemented by every package handler.
type RouteRegistrar interface {
	RegisterRoutes(r chi.Router)
}

// corsMethods lists every method the frontend origin may use.
var corsMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// NewRouter builds the chi router with the standard middleware stack and
// lets each handler attach its routes.
func NewRouter(allowedOrigin string, logger *slog.Logger, handlers ...RouteRegistrar) *chi.Mux {
	r := chi.NewRouter()

	r.Use(correlation.Middleware)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{allowedOrigin},
		AllowedMethods:   corsMethods,
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	for _, h := range handlers {
		h.RegisterRoutes(r)
	}

	return r
}

// requestLogger writes one structured line per request.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				attrs := []any{
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration", time.Since(start),
				}
				if id, err := correlation.GetID(r.Context()); err == nil {
					attrs = append(attrs, "correlation_id", id.String())
				}
				logger.Info("request handled", attrs...)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
