package event

import "context"

type Repository interface {
	Insert(ctx context.Context, e *Event) error
	Get(ctx context.Context, id string) (*Event, error)
	// List returns events newest event_date first.
	List(ctx context.Context, status *Status) ([]Event, error)
}
