package services

import "go.opentelemetry.io/otel"

// Spans go to the global provider; without a Jaeger endpoint it is a no-op.
var tracer = otel.Tracer("koreatrip/internal/services")
