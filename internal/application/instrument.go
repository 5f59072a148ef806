package application

import (
	"context"
	"errors"
	"time"

	"github.com/kashoe/chessclub-api/internal/observability"
	"github.com/kashoe/chessclub-api/internal/observability/logctx"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const spanPrefix = "UC."

const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Instrument holds the span, RED metrics and log line shared by every use case of a service.
type Instrument struct {
	tracer observability.Tracer
	log    observability.Logger

	reqCounter   observability.Counter   // usecase_requests_total{use_case,outcome}
	durHistogram observability.Histogram // usecase_duration_seconds{use_case}
}

func NewInstrument(service string, tel observability.Observability) *Instrument {
	if tel == nil {
		tel = observability.Nop()
	}
	return &Instrument{
		tracer:       tel.Tracer(),
		log:          tel.Logger().With(observability.F("service", service)),
		reqCounter:   tel.Metrics().Counter(observability.MUsecaseRequests),
		durHistogram: tel.Metrics().Histogram(observability.MUsecaseDuration),
	}
}

// Call tracks one use-case execution. Callers defer End with the named error result.
type Call struct {
	in      *Instrument
	ctx     context.Context
	span    trace.Span
	log     observability.Logger
	useCase string
	start   time.Time

	outcome string
	status  string
}

// Begin starts the "UC.<useCase>" span and returns the context carrying it.
func (in *Instrument) Begin(ctx context.Context, useCase string, attrs ...attribute.KeyValue) (context.Context, *Call) {
	attrs = append([]attribute.KeyValue{attribute.String("use_case", useCase)}, attrs...)
	if rid := logctx.RequestID(ctx); rid != "" {
		attrs = append(attrs, attribute.String("request.id", rid))
	}
	ctx, span := in.tracer.Start(ctx, spanPrefix+useCase, attrs...)
	return ctx, &Call{
		in:      in,
		ctx:     ctx,
		span:    span,
		log:     logctx.FromOr(ctx, in.log).With(observability.F("use_case", useCase)),
		useCase: useCase,
		start:   time.Now(),
		outcome: OutcomeSuccess,
		status:  "OK",
	}
}

func (c *Call) Span() trace.Span { return c.span }

func (c *Call) Logger() observability.Logger { return c.log }

// SetStatus records a non-failure status such as "REACTIVATED".
func (c *Call) SetStatus(status string) { c.status = status }

// Reject marks a failure caused by the caller (invalid input, unknown id) and returns err.
func (c *Call) Reject(status string, err error) error {
	c.outcome, c.status = OutcomeRejected, status
	return err
}

// Fail marks a server-side failure and returns err.
func (c *Call) Fail(status string, err error) error {
	c.outcome, c.status = OutcomeError, status
	return err
}

// End closes the span, records metrics and writes the use_case_done line.
func (c *Call) End(err error) {
	if err != nil && c.outcome == OutcomeSuccess {
		c.outcome, c.status = OutcomeError, "FAILED"
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			c.status = "CONTEXT_CANCELED"
		}
	}
	lat := time.Since(c.start).Seconds()

	switch {
	case c.outcome == OutcomeError:
		c.span.RecordError(err)
		c.span.SetStatus(codes.Error, c.status)
	case err != nil:
		c.span.SetAttributes(attribute.String("use_case.rejected", c.status))
		c.span.SetStatus(codes.Ok, c.status)
	default:
		c.span.SetStatus(codes.Ok, c.status)
	}
	c.span.End()

	c.in.reqCounter.Add(1,
		observability.L("use_case", c.useCase),
		observability.L("outcome", c.outcome),
	)
	c.in.durHistogram.Observe(lat, observability.L("use_case", c.useCase))

	fields := []observability.Field{
		observability.F("outcome", c.outcome),
		observability.F("status", c.status),
		observability.F("latency_seconds", lat),
	}
	if sc := trace.SpanContextFromContext(c.ctx); sc.IsValid() {
		fields = append(fields,
			observability.F("trace_id", sc.TraceID().String()),
			observability.F("span_id", sc.SpanID().String()),
		)
	}
	if err != nil {
		fields = append(fields, observability.Err(err))
	}
	if c.outcome == OutcomeError {
		c.log.Error("use_case_done", fields...)
		return
	}
	c.log.Info("use_case_done", fields...)
}
