package application

import (
	"context"
	"errors"
	"testing"

	"github.com/kashoe/chessclub-api/internal/infrastructure/observability/prometrics"
	"github.com/kashoe/chessclub-api/internal/infrastructure/observability/telemetry"
	"github.com/kashoe/chessclub-api/internal/infrastructure/observability/zaplogger"
	"github.com/kashoe/chessclub-api/internal/observability"
	"github.com/kashoe/chessclub-api/internal/observability/logctx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type sdkTracer struct{ t trace.Tracer }

func (s sdkTracer) Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.t.Start(ctx, name, trace.WithAttributes(attrs...))
}

type harness struct {
	tel   observability.Observability
	logs  *observer.ObservedLogs
	spans *tracetest.SpanRecorder
	reg   *prometheus.Registry
}

func newHarness(t *testing.T) harness {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	reg := prometheus.NewRegistry()
	counters, histograms := prometrics.Instruments(prometrics.New(reg, "test", ""))
	tel := telemetry.New(sdkTracer{t: tp.Tracer("test")}, zaplogger.Wrap(zap.New(core)), counters, histograms)
	return harness{tel: tel, logs: logs, spans: rec, reg: reg}
}

func run(in *Instrument, useCase string, body func(c *Call) error) (err error) {
	_, call := in.Begin(context.Background(), useCase)
	defer func() { call.End(err) }()
	return body(call)
}

func TestCallSuccess(t *testing.T) {
	h := newHarness(t)
	in := NewInstrument("product-service", h.tel)

	require.NoError(t, run(in, "product.create", func(*Call) error { return nil }))

	spans := h.spans.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "UC.product.create", spans[0].Name())
	assert.Equal(t, codes.Ok, spans[0].Status().Code)

	entries := h.logs.FilterMessage("use_case_done").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "product-service", fields["service"])
	assert.Equal(t, "product.create", fields["use_case"])
	assert.Equal(t, OutcomeSuccess, fields["outcome"])
	assert.Contains(t, fields, "trace_id")

	count, err := testutil.GatherAndCount(h.reg, "test_usecase_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCallRejectIsNotAnError(t *testing.T) {
	h := newHarness(t)
	in := NewInstrument("order-service", h.tel)
	notFound := errors.New("order: not found")

	err := run(in, "order.get", func(c *Call) error { return c.Reject("NOT_FOUND", notFound) })
	assert.ErrorIs(t, err, notFound)

	spans := h.spans.Ended()
	require.Len(t, spans, 1)
	assert.NotEqual(t, codes.Error, spans[0].Status().Code)

	entries := h.logs.FilterMessage("use_case_done").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, OutcomeRejected, entries[0].ContextMap()["outcome"])
	assert.Equal(t, "NOT_FOUND", entries[0].ContextMap()["status"])
}

func TestCallFailRecordsError(t *testing.T) {
	h := newHarness(t)
	in := NewInstrument("event-service", h.tel)

	err := run(in, "event.list", func(c *Call) error {
		return c.Fail("REPO_FIND_FAILED", errors.New("connection reset"))
	})
	require.Error(t, err)

	spans := h.spans.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "REPO_FIND_FAILED", spans[0].Status().Description)

	entries := h.logs.FilterMessage("use_case_done").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.ErrorLevel, entries[0].Level)
	assert.Equal(t, "connection reset", entries[0].ContextMap()["error"])
}

func TestCallUnclassifiedErrorDefaultsToFailure(t *testing.T) {
	h := newHarness(t)
	in := NewInstrument("contact-service", h.tel)

	_ = run(in, "contact.list", func(*Call) error { return context.Canceled })

	entries := h.logs.FilterMessage("use_case_done").All()
	require.Len(t, entries, 1)
	assert.Equal(t, OutcomeError, entries[0].ContextMap()["outcome"])
	assert.Equal(t, "CONTEXT_CANCELED", entries[0].ContextMap()["status"])
}

func TestNilTelemetryIsSafe(t *testing.T) {
	in := NewInstrument("svc", nil)
	assert.NoError(t, run(in, "noop", func(*Call) error { return nil }))
}

func TestBeginTagsSpanWithRequestID(t *testing.T) {
	h := newHarness(t)
	in := NewInstrument("order-service", h.tel)

	ctx := logctx.WithRequestID(context.Background(), "req-7")
	_, call := in.Begin(ctx, "order.get")
	call.End(nil)

	spans := h.spans.Ended()
	require.Len(t, spans, 1)
	assert.Contains(t, spans[0].Attributes(), attribute.String("request.id", "req-7"))
}
