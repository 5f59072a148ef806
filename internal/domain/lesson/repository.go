package lesson

import "context"

type Repository interface {
	Insert(ctx context.Context, r *Registration) error
	// List returns registrations newest first.
	List(ctx context.Context, status *Status) ([]Registration, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}
