// Package mpesa is the Safaricom M-Pesa payment gateway. STK push and callback
// handling are not integrated yet: Initiate echoes the request and callbacks never
// change an order.
package mpesa

import (
	"context"

	"github.com/kashoe/chessclub-api/internal/domain/payment"
	"github.com/kashoe/chessclub-api/internal/observability"
)

const placeholderMessage = "M-Pesa integration placeholder"

type Gateway struct {
	log observability.Logger
}

func NewGateway(log observability.Logger) *Gateway {
	if log == nil {
		log = observability.NopLogger()
	}
	return &Gateway{log: log.With(observability.F("component", "mpesa_gateway"))}
}

// Initiate performs no external call and reports the payment as pending.
func (g *Gateway) Initiate(ctx context.Context, req payment.InitiateRequest) (*payment.InitiateResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res := &payment.InitiateResult{
		Message:     placeholderMessage,
		OrderID:     req.OrderID,
		PhoneNumber: req.PhoneNumber,
		Status:      payment.StatusPending,
	}
	if req.Amount != nil {
		res.Amount = *req.Amount
	}
	g.log.Debug("stk_push_stubbed", observability.F("order_id", req.OrderID))
	return res, nil
}

// HandleCallback accepts any payload and never asks for an order change.
func (g *Gateway) HandleCallback(_ context.Context, payload map[string]any) (*payment.Reconciliation, error) {
	g.log.Debug("callback_stubbed", observability.F("keys", len(payload)))
	return nil, nil
}
