package oteltrace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestTracerRecordsAttributes(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	_, span := New("test").Start(context.Background(), "UC.Something", attribute.String("use_case", "x"))
	span.End()

	ended := rec.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "UC.Something", ended[0].Name())
	assert.Contains(t, ended[0].Attributes(), attribute.String("use_case", "x"))
}

func TestSetupRejectsUnknownExporter(t *testing.T) {
	_, err := Setup("svc", "jaeger")
	assert.Error(t, err)
}

func TestSetupNoneIsNoop(t *testing.T) {
	shutdown, err := Setup("svc", ExporterNone)
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}
