package docstore

import (
	"context"
	"errors"

	domain "github.com/kashoe/chessclub-api/internal/domain/lesson"
)

type LessonRepository struct {
	coll  *Collection[domain.Registration]
	limit int64
}

func NewLessonRepository(store Store, limit int64) *LessonRepository {
	return &LessonRepository{
		coll:  NewCollection[domain.Registration](store, CollectionLessons),
		limit: listLimit(limit),
	}
}

func (r *LessonRepository) Insert(ctx context.Context, reg *domain.Registration) error {
	return r.coll.Insert(ctx, reg)
}

func (r *LessonRepository) List(ctx context.Context, status *domain.Status) ([]domain.Registration, error) {
	query := Filter{}
	if status != nil {
		query["status"] = *status
	}
	return r.coll.Find(ctx, query, FindOptions{
		Sort:  []Sort{{Field: "created_at", Descending: true}},
		Limit: r.limit,
	})
}

func (r *LessonRepository) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	_, err := r.coll.UpdateFields(ctx, byID(id), Fields{"status": status})
	if errors.Is(err, ErrNotFound) {
		return domain.ErrNotFound
	}
	return err
}
