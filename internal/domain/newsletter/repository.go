package newsletter

import "context"

type Repository interface {
	FindByEmail(ctx context.Context, email string) (*Subscription, error)
	Insert(ctx context.Context, s *Subscription) error
	// Reactivate sets is_active back to true for the subscription with the given email.
	Reactivate(ctx context.Context, email string) error
}
