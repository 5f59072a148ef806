package observability

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrUsesMessage(t *testing.T) {
	assert.Equal(t, Field{Key: "error", Value: "boom"}, Err(errors.New("boom")))
	assert.Equal(t, Field{Key: "error", Value: ""}, Err(nil))
}

func TestNopIsSafe(t *testing.T) {
	o := Nop()
	o.Logger().With(F("k", "v")).Info("ignored", Err(errors.New("x")))
	o.Metrics().Counter(MHTTPRequests).Add(1, L("route", "/api/products"))
	o.Metrics().Histogram(MUsecaseDuration).Observe(0.5)
}
