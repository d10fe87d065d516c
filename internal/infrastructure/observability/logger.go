package observability

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"
)

// InitLogger initializes the global zerolog logger
func InitLogger(serviceName, env string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}).With().
			Str("service", serviceName).
			Logger()
	} else {
		log.Logger = zerolog.New(os.Stdout).
			With().
			Timestamp().
			Caller().
			Str("service", serviceName).
			Logger()
	}
}

type logField struct {
	key   string
	value string
}

type logFieldsKey struct{}

// WithLogField returns a context whose logger also carries key=value. The
// request pipeline uses it for the caller's user id and the hospital or
// service a write targets.
func WithLogField(ctx context.Context, key, value string) context.Context {
	existing, _ := ctx.Value(logFieldsKey{}).([]logField)
	fields := make([]logField, len(existing), len(existing)+1)
	copy(fields, existing)
	return context.WithValue(ctx, logFieldsKey{}, append(fields, logField{key: key, value: value}))
}

// LoggerFromContext returns a logger with trace context and any fields
// added through WithLogField
func LoggerFromContext(ctx context.Context) *zerolog.Logger {
	builder := log.With()
	if fields, ok := ctx.Value(logFieldsKey{}).([]logField); ok {
		for _, field := range fields {
			builder = builder.Str(field.key, field.value)
		}
	}
	logger := builder.Logger()

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		logger = logger.With().
			Str("trace_id", span.SpanContext().TraceID().String()).
			Str("span_id", span.SpanContext().SpanID().String()).
			Logger()
	}

	return &logger
}
