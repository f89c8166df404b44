// Package correlation tags every request with an ID that is echoed back to
// the caller and attached to log lines.
package correlation

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// HeaderName carries the correlation ID on requests and responses.
const HeaderName = "X-Correlation-Id"

// contextKey is a private type to avoid key collisions in the context.
type contextKey string

// IDKey stores the correlation ID in a request context.
const IDKey = contextKey("correlation_id")

// SetID returns a new request with the correlation ID added to its context.
func SetID(r *http.Request, id uuid.UUID) *http.Request {
	ctx := context.WithValue(r.Context(), IDKey, id)
	return r.WithContext(ctx)
}

// GetID retrieves the correlation ID from the context.
func GetID(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctx.Value(IDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, fmt.Errorf("no correlation ID in context")
	}
	return id, nil
}

// Middleware reuses a well formed incoming ID or mints a new one, then
// exposes it through the context and the response header.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.Header.Get(HeaderName))
		if err != nil || id == uuid.Nil {
			id = uuid.New()
		}

		w.Header().Set(HeaderName, id.String())
		next.ServeHTTP(w, SetID(r, id))
	})
}
