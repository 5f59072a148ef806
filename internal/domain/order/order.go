package order

import (
	"errors"
	"time"

	"github.com/kashoe/chessclub-api/internal/domain/validate"
	"github.com/kashoe/chessclub-api/internal/pkg/isotime"
)

var ErrNotFound = errors.New("order: not found")

type Status string

const (
	StatusPending    Status = "pending"
	StatusPaid       Status = "paid"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Item is a snapshot of the product at checkout time; it is never re-priced.
type Item struct {
	ProductID   string  `json:"product_id" bson:"product_id" validate:"required"`
	ProductName string  `json:"product_name" bson:"product_name" validate:"required"`
	Quantity    int     `json:"quantity" bson:"quantity" validate:"gte=1"`
	Price       float64 `json:"price" bson:"price" validate:"gte=0"`
}

type Order struct {
	ID             string    `json:"id" bson:"id"`
	CustomerName   string    `json:"customer_name" bson:"customer_name"`
	CustomerEmail  string    `json:"customer_email" bson:"customer_email"`
	CustomerPhone  string    `json:"customer_phone" bson:"customer_phone"`
	Items          []Item    `json:"items" bson:"items"`
	TotalAmount    float64   `json:"total_amount" bson:"total_amount"`
	Status         Status    `json:"status" bson:"status"`
	MpesaReference *string   `json:"mpesa_reference" bson:"mpesa_reference"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}

type CreateInput struct {
	CustomerName  string   `json:"customer_name" validate:"required"`
	CustomerEmail string   `json:"customer_email" validate:"required,email"`
	CustomerPhone string   `json:"customer_phone" validate:"required"`
	Items         []Item   `json:"items" validate:"required,min=1,dive"`
	TotalAmount   *float64 `json:"total_amount" validate:"required,gte=0"`
}

// StatusInput moves an order to a new status, optionally recording the payment reference
// in the same write.
type StatusInput struct {
	Status         Status `json:"status" validate:"required,enum"`
	MpesaReference string `json:"mpesa_reference"`
}

// Fields returns the set-update for the transition. An empty reference is not written.
func (in StatusInput) Fields() map[string]any {
	fields := map[string]any{"status": in.Status}
	if in.MpesaReference != "" {
		fields["mpesa_reference"] = in.MpesaReference
	}
	return fields
}

// New builds a pending order from validated input.
func New(id string, in CreateInput, now time.Time) *Order {
	items := make([]Item, len(in.Items))
	copy(items, in.Items)

	o := &Order{
		ID:            id,
		CustomerName:  in.CustomerName,
		CustomerEmail: validate.Email(in.CustomerEmail),
		CustomerPhone: in.CustomerPhone,
		Items:         items,
		Status:        StatusPending,
		CreatedAt:     isotime.Normalize(now),
	}
	if in.TotalAmount != nil {
		o.TotalAmount = *in.TotalAmount
	}
	return o
}
