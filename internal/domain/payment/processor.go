package payment

import (
	"context"

	"github.com/kashoe/chessclub-api/internal/domain/order"
)

type Status string

const (
	StatusPending Status = "pending"
)

type InitiateRequest struct {
	PhoneNumber string   `json:"phone_number" validate:"required"`
	Amount      *float64 `json:"amount" validate:"required,gte=0"`
	OrderID     string   `json:"order_id" validate:"required"`
}

type InitiateResult struct {
	Message     string  `json:"message"`
	OrderID     string  `json:"order_id"`
	Amount      float64 `json:"amount"`
	PhoneNumber string  `json:"phone_number"`
	Status      Status  `json:"status"`
}

// Reconciliation is the order change a provider callback asks for.
type Reconciliation struct {
	OrderID   string
	Status    order.Status
	Reference string
}

// Gateway is a mobile-money provider.
type Gateway interface {
	Initiate(ctx context.Context, req InitiateRequest) (*InitiateResult, error)
	// HandleCallback interprets a provider callback. A nil Reconciliation means the
	// callback does not change any order.
	HandleCallback(ctx context.Context, payload map[string]any) (*Reconciliation, error)
}
