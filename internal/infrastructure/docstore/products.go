package docstore

import (
	"context"
	"errors"

	domain "github.com/kashoe/chessclub-api/internal/domain/product"
)

type ProductRepository struct {
	coll  *Collection[domain.Product]
	limit int64
}

func NewProductRepository(store Store, limit int64) *ProductRepository {
	return &ProductRepository{
		coll:  NewCollection[domain.Product](store, CollectionProducts),
		limit: listLimit(limit),
	}
}

func (r *ProductRepository) Insert(ctx context.Context, p *domain.Product) error {
	return r.coll.Insert(ctx, p)
}

func (r *ProductRepository) Get(ctx context.Context, id string) (*domain.Product, error) {
	p, err := r.coll.FindOne(ctx, byID(id))
	if errors.Is(err, ErrNotFound) {
		return nil, domain.ErrNotFound
	}
	return p, err
}

func (r *ProductRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Product, error) {
	query := Filter{"is_active": filter.IsActive}
	if filter.Category != nil {
		query["category"] = *filter.Category
	}
	return r.coll.Find(ctx, query, FindOptions{Limit: r.limit})
}

func (r *ProductRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	_, err := r.coll.UpdateFields(ctx, byID(id), Fields(fields))
	if errors.Is(err, ErrNotFound) {
		return domain.ErrNotFound
	}
	return err
}
