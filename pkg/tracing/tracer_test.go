package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/tair/boycott-service/pkg/config"
)

func TestInitTracer_Disabled(t *testing.T) {
	tp, err := InitTracer("boycott-service", config.TracingConfig{Enabled: false})
	require.NoError(t, err)

	assert.IsType(t, noop.TracerProvider{}, tp)
	assert.Contains(t, otel.GetTextMapPropagator().Fields(), "traceparent")
	assert.NoError(t, Shutdown(context.Background(), tp))
}

func TestInitTracer_Enabled(t *testing.T) {
	tp, err := InitTracer("boycott-service", config.TracingConfig{
		Enabled:        true,
		JaegerEndpoint: "http://127.0.0.1:14268/api/traces",
	})
	require.NoError(t, err)

	assert.IsType(t, &sdktrace.TracerProvider{}, tp)
	assert.NoError(t, Shutdown(context.Background(), tp))
}
