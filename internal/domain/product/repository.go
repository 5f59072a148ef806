package product

import "context"

// ListFilter selects products by active flag and, optionally, category.
type ListFilter struct {
	Category *Category
	IsActive bool
}

type Repository interface {
	Insert(ctx context.Context, p *Product) error
	Get(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, filter ListFilter) ([]Product, error)
	Update(ctx context.Context, id string, fields map[string]any) error
}
