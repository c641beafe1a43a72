package http

import (
	"strings"
	"time"

	"github.com/MikeRez0/checkout/internal/adapter/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"
const requestIDKey = "request_id"

var tracer = otel.Tracer("github.com/MikeRez0/checkout/internal/adapter/handler/http")

func requestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Set(requestIDKey, id)
		ctx.Header(requestIDHeader, id)
		ctx.Next()
	}
}

// tracing starts a server span for every request.
func tracing() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}

		reqCtx, span := tracer.Start(ctx.Request.Context(), ctx.Request.Method+" "+route,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", ctx.Request.Method),
				attribute.String("http.route", route),
				attribute.String("request.id", ctx.GetString(requestIDKey)),
			))
		defer span.End()

		ctx.Request = ctx.Request.WithContext(reqCtx)
		ctx.Next()

		span.SetAttributes(attribute.Int("http.status_code", ctx.Writer.Status()))
	}
}

// requestLogger logs every incoming request and stores a request scoped
// logger in the request context.
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		reqLog := log.With(zap.String(requestIDKey, ctx.GetString(requestIDKey)))
		if sc := trace.SpanContextFromContext(ctx.Request.Context()); sc.HasTraceID() {
			reqLog = reqLog.With(zap.String("trace_id", sc.TraceID().String()))
		}
		ctx.Request = ctx.Request.WithContext(logger.ContextWithLogger(ctx.Request.Context(), reqLog))

		params := make([]string, 0, len(ctx.Request.URL.Query()))
		for k, v := range ctx.Request.URL.Query() {
			params = append(params, k+": "+strings.Join(v, ","))
		}
		reqLog.Info("Incoming request",
			zap.String("method", ctx.Request.Method),
			zap.String("route", ctx.Request.URL.Path),
			zap.String("parameters", strings.Join(params, ", ")))

		ctx.Next()

		reqLog.Debug("Request finished",
			zap.Int("status", ctx.Writer.Status()),
			zap.Duration("duration", time.Since(start)))
	}
}
