// Package middleware provides HTTP middleware for the resume validator server.
package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// correlationIDKey is the context key for the per-request correlation ID.
const correlationIDKey ContextKey = "correlationID"

// correlationIDHeader is honored on requests and always set on responses.
const correlationIDHeader = "X-Correlation-ID"

// CorrelationID assigns each request a correlation ID, reusing the one the
// client sent when present, and echoes it on the response.
func CorrelationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(correlationIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(correlationIDHeader, id)
		ctx := context.WithValue(r.Context(), correlationIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetCorrelationID extracts the correlation ID from the request context.
func GetCorrelationID(r *http.Request) string {
	id, _ := r.Context().Value(correlationIDKey).(string)
	return id
}
