package logctx

import (
	"context"
	"testing"

	"github.com/kashoe/chessclub-api/internal/observability"
	"github.com/stretchr/testify/assert"
)

func TestFromOr(t *testing.T) {
	fallback := observability.NopLogger()
	assert.Equal(t, fallback, FromOr(context.Background(), fallback))
	assert.Nil(t, From(context.Background()))

	scoped := observability.NopLogger().With(observability.F("request_id", "r1"))
	ctx := With(context.Background(), scoped)
	assert.Equal(t, scoped, From(ctx))
	assert.Equal(t, scoped, FromOr(ctx, fallback))
}

func TestEmptyValuesKeepContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, With(ctx, nil))
	assert.Equal(t, ctx, WithRequestID(ctx, ""))
	assert.Empty(t, RequestID(ctx))
}

func TestRequestIDSurvivesLoggerSwap(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-42")
	ctx = With(ctx, observability.NopLogger())
	assert.Equal(t, "req-42", RequestID(ctx))
	assert.NotNil(t, From(ctx))

	ctx = WithRequestID(ctx, "req-43")
	assert.Equal(t, "req-43", RequestID(ctx))
	assert.NotNil(t, From(ctx), "logger kept when the id changes")
}
