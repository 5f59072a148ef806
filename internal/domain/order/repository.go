package order

import "context"

type Repository interface {
	Insert(ctx context.Context, o *Order) error
	Get(ctx context.Context, id string) (*Order, error)
	// List returns orders newest first.
	List(ctx context.Context, status *Status) ([]Order, error)
	UpdateStatus(ctx context.Context, id string, in StatusInput) error
}
