package docstore

import (
	"context"
	"errors"

	domain "github.com/kashoe/chessclub-api/internal/domain/order"
)

type OrderRepository struct {
	coll  *Collection[domain.Order]
	limit int64
}

func NewOrderRepository(store Store, limit int64) *OrderRepository {
	return &OrderRepository{
		coll:  NewCollection[domain.Order](store, CollectionOrders),
		limit: listLimit(limit),
	}
}

func (r *OrderRepository) Insert(ctx context.Context, o *domain.Order) error {
	return r.coll.Insert(ctx, o)
}

func (r *OrderRepository) Get(ctx context.Context, id string) (*domain.Order, error) {
	o, err := r.coll.FindOne(ctx, byID(id))
	if errors.Is(err, ErrNotFound) {
		return nil, domain.ErrNotFound
	}
	return o, err
}

func (r *OrderRepository) List(ctx context.Context, status *domain.Status) ([]domain.Order, error) {
	query := Filter{}
	if status != nil {
		query["status"] = *status
	}
	return r.coll.Find(ctx, query, FindOptions{
		Sort:  []Sort{{Field: "created_at", Descending: true}},
		Limit: r.limit,
	})
}

// UpdateStatus writes the status and optional reference in a single document update.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, in domain.StatusInput) error {
	_, err := r.coll.UpdateFields(ctx, byID(id), Fields(in.Fields()))
	if errors.Is(err, ErrNotFound) {
		return domain.ErrNotFound
	}
	return err
}
