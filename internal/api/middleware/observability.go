package middleware

import (
	"net/http"

	"go.opentelemetry.io/otel/attribute"

	"github.com/avtoservice/admin-console/internal/infrastructure/observability"
)

// ObservabilityMiddleware adds OpenTelemetry tracing to console requests
func ObservabilityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Use route pattern instead of raw path to avoid high cardinality
		route := r.Pattern
		if route == "" {
			route = r.URL.Path
		}

		ctx, span := observability.StartSpan(r.Context(), route)
		defer span.End()

		observability.SetSpanAttributes(span,
			attribute.String("http.method", r.Method),
			attribute.String("http.route", route),
		)

		rw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r.WithContext(ctx))

		observability.SetSpanAttributes(span, attribute.Int("http.status_code", rw.statusCode))
	})
}
