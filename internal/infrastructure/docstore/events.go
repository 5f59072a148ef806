package docstore

import (
	"context"
	"errors"

	domain "github.com/kashoe/chessclub-api/internal/domain/event"
)

type EventRepository struct {
	coll  *Collection[domain.Event]
	limit int64
}

func NewEventRepository(store Store, limit int64) *EventRepository {
	return &EventRepository{
		coll:  NewCollection[domain.Event](store, CollectionEvents),
		limit: listLimit(limit),
	}
}

func (r *EventRepository) Insert(ctx context.Context, e *domain.Event) error {
	return r.coll.Insert(ctx, e)
}

func (r *EventRepository) Get(ctx context.Context, id string) (*domain.Event, error) {
	e, err := r.coll.FindOne(ctx, byID(id))
	if errors.Is(err, ErrNotFound) {
		return nil, domain.ErrNotFound
	}
	return e, err
}

func (r *EventRepository) List(ctx context.Context, status *domain.Status) ([]domain.Event, error) {
	query := Filter{}
	if status != nil {
		query["status"] = *status
	}
	return r.coll.Find(ctx, query, FindOptions{
		Sort:  []Sort{{Field: "event_date", Descending: true}},
		Limit: r.limit,
	})
}
