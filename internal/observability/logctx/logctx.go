// Package logctx carries request-scoped logging state on a context: the request
// logger built by the HTTP middleware and the request id echoed in X-Request-ID.
package logctx

import (
	"context"

	"github.com/kashoe/chessclub-api/internal/observability"
)

type scopeKey struct{}

type scope struct {
	logger    observability.Logger
	requestID string
}

func current(ctx context.Context) scope {
	s, _ := ctx.Value(scopeKey{}).(scope)
	return s
}

// With attaches logger to ctx, keeping any request id already there.
// A nil logger leaves ctx unchanged.
func With(ctx context.Context, logger observability.Logger) context.Context {
	if logger == nil {
		return ctx
	}
	s := current(ctx)
	s.logger = logger
	return context.WithValue(ctx, scopeKey{}, s)
}

// WithRequestID tags ctx with id. An empty id leaves ctx unchanged.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	s := current(ctx)
	s.requestID = id
	return context.WithValue(ctx, scopeKey{}, s)
}

func RequestID(ctx context.Context) string { return current(ctx).requestID }

func From(ctx context.Context) observability.Logger { return current(ctx).logger }

// FromOr returns the request logger, or fallback outside a request.
func FromOr(ctx context.Context, fallback observability.Logger) observability.Logger {
	if logger := From(ctx); logger != nil {
		return logger
	}
	return fallback
}
