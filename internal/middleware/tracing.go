package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-focos-incendio/internal/observability"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// RequestTiming abre um span por requisição com rota, request id e duração.
// Só respostas 5xx marcam o span como erro.
func RequestTiming() gin.HandlerFunc {
	tracer := observability.Tracer("http")

	return func(c *gin.Context) {
		start := time.Now()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		ctx, span := tracer.Start(c.Request.Context(), c.Request.Method+" "+route,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", c.Request.Method),
				attribute.String("http.route", route),
				attribute.String("http.target", c.Request.URL.RequestURI()),
				attribute.String("http.client_ip", c.ClientIP()),
				attribute.String("http.request_id", GetRequestID(c)),
			),
		)
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(
			attribute.Int("http.status_code", status),
			attribute.Int64("http.duration_ms", time.Since(start).Milliseconds()),
			attribute.Int("http.response_size", c.Writer.Size()),
		)

		if status >= 500 {
			span.SetStatus(codes.Error, "erro interno")
			if len(c.Errors) > 0 {
				span.SetAttributes(attribute.String("http.error_message", c.Errors.String()))
			}
		}
	}
}
