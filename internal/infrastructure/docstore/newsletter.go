package docstore

import (
	"context"
	"errors"

	domain "github.com/kashoe/chessclub-api/internal/domain/newsletter"
)

type NewsletterRepository struct {
	coll *Collection[domain.Subscription]
}

func NewNewsletterRepository(store Store) *NewsletterRepository {
	return &NewsletterRepository{
		coll: NewCollection[domain.Subscription](store, CollectionNewsletter),
	}
}

func (r *NewsletterRepository) FindByEmail(ctx context.Context, email string) (*domain.Subscription, error) {
	s, err := r.coll.FindOne(ctx, Filter{"email": email})
	if errors.Is(err, ErrNotFound) {
		return nil, domain.ErrNotFound
	}
	return s, err
}

func (r *NewsletterRepository) Insert(ctx context.Context, s *domain.Subscription) error {
	err := r.coll.Insert(ctx, s)
	if errors.Is(err, ErrDuplicate) {
		return domain.ErrAlreadySubscribed
	}
	return err
}

func (r *NewsletterRepository) Reactivate(ctx context.Context, email string) error {
	_, err := r.coll.UpdateFields(ctx, Filter{"email": email}, Fields{"is_active": true})
	if errors.Is(err, ErrNotFound) {
		return domain.ErrNotFound
	}
	return err
}
