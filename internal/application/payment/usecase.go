// Package payment fronts the mobile-money gateway.
package payment

import (
	"context"
	"fmt"

	"github.com/kashoe/chessclub-api/internal/application"
	"github.com/kashoe/chessclub-api/internal/domain/order"
	domain "github.com/kashoe/chessclub-api/internal/domain/payment"
	"github.com/kashoe/chessclub-api/internal/domain/validate"
	"github.com/kashoe/chessclub-api/internal/observability"

	"go.opentelemetry.io/otel/attribute"
)

const (
	serviceName     = "payment-service"
	useCaseInitiate = "payment.initiate"
	useCaseCallback = "payment.callback"
)

const callbackAck = "Callback received"

// OrderStatusUpdater applies a reconciled status to an order.
type OrderStatusUpdater interface {
	UpdateStatus(ctx context.Context, id string, in order.StatusInput) error
}

var (
	_ application.UseCase[domain.InitiateRequest, *domain.InitiateResult] = (*InitiateUseCase)(nil)
	_ application.UseCase[map[string]any, CallbackResult]                 = (*CallbackUseCase)(nil)
)

type InitiateUseCase struct {
	gateway domain.Gateway
	instr   *application.Instrument
}

func NewInitiateUseCase(gateway domain.Gateway, tel observability.Observability) *InitiateUseCase {
	return &InitiateUseCase{gateway: gateway, instr: application.NewInstrument(serviceName, tel)}
}

func (uc *InitiateUseCase) Execute(ctx context.Context, req domain.InitiateRequest) (_ *domain.InitiateResult, err error) {
	ctx, call := uc.instr.Begin(ctx, useCaseInitiate, attribute.String("order.id", req.OrderID))
	defer func() { call.End(err) }()

	if verr := validate.Struct(req); verr != nil {
		return nil, call.Reject("INVALID_INPUT", verr)
	}
	res, gerr := uc.gateway.Initiate(ctx, req)
	if gerr != nil {
		return nil, call.Fail("GATEWAY_FAILED", fmt.Errorf("payment: initiate: %w", gerr))
	}
	call.Span().SetAttributes(attribute.String("payment.status", string(res.Status)))
	return res, nil
}

type CallbackResult struct {
	Message string `json:"message"`
}

// CallbackUseCase always acknowledges the provider. Gateway and reconciliation
// failures are logged and recorded on the span, never returned.
type CallbackUseCase struct {
	gateway domain.Gateway
	orders  OrderStatusUpdater
	instr   *application.Instrument
}

func NewCallbackUseCase(gateway domain.Gateway, orders OrderStatusUpdater, tel observability.Observability) *CallbackUseCase {
	return &CallbackUseCase{gateway: gateway, orders: orders, instr: application.NewInstrument(serviceName, tel)}
}

func (uc *CallbackUseCase) Execute(ctx context.Context, payload map[string]any) (CallbackResult, error) {
	ctx, call := uc.instr.Begin(ctx, useCaseCallback)
	var handleErr error
	defer func() { call.End(handleErr) }()

	ack := CallbackResult{Message: callbackAck}

	rec, herr := uc.gateway.HandleCallback(ctx, payload)
	if herr != nil {
		handleErr = call.Reject("CALLBACK_UNREADABLE", herr)
		return ack, nil
	}
	if rec == nil {
		call.SetStatus("NO_CHANGE")
		return ack, nil
	}
	if rerr := uc.Reconcile(ctx, *rec); rerr != nil {
		handleErr = call.Fail("RECONCILE_FAILED", rerr)
	}
	return ack, nil
}

// Reconcile moves the order to the status the provider reported.
func (uc *CallbackUseCase) Reconcile(ctx context.Context, rec domain.Reconciliation) error {
	if uc.orders == nil {
		return fmt.Errorf("payment: reconcile %s: no order updater", rec.OrderID)
	}
	err := uc.orders.UpdateStatus(ctx, rec.OrderID, order.StatusInput{
		Status:         rec.Status,
		MpesaReference: rec.Reference,
	})
	if err != nil {
		return fmt.Errorf("payment: reconcile %s: %w", rec.OrderID, err)
	}
	return nil
}
