package docstore

import (
	"context"

	domain "github.com/kashoe/chessclub-api/internal/domain/contact"
)

type ContactRepository struct {
	coll  *Collection[domain.Submission]
	limit int64
}

func NewContactRepository(store Store, limit int64) *ContactRepository {
	return &ContactRepository{
		coll:  NewCollection[domain.Submission](store, CollectionContact),
		limit: listLimit(limit),
	}
}

func (r *ContactRepository) Insert(ctx context.Context, s *domain.Submission) error {
	return r.coll.Insert(ctx, s)
}

func (r *ContactRepository) List(ctx context.Context) ([]domain.Submission, error) {
	return r.coll.Find(ctx, Filter{}, FindOptions{
		Sort:  []Sort{{Field: "created_at", Descending: true}},
		Limit: r.limit,
	})
}
