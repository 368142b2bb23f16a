package trace

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv(EndpointEnv, "")

	p, err := NewProvider(context.Background(), "test")
	require.NoError(t, err)
	assert.Nil(t, p)

	// A nil provider is usable.
	p.Install()
	_, span := p.Tracer("x").Start(context.Background(), "noop")
	span.End()
	assert.False(t, span.SpanContext().IsValid())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNewProvider_EnabledWithEndpoint(t *testing.T) {
	t.Setenv(EndpointEnv, "127.0.0.1:4318")
	t.Setenv(ServiceNameEnv, "qrpanels-test")

	p, err := NewProvider(context.Background(), "test")
	require.NoError(t, err)
	require.NotNil(t, p)

	_, span := p.Tracer("x").Start(context.Background(), "real")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	// Nothing listens on the endpoint; only check that shutdown returns.
	_ = p.Shutdown(ctx)
}
