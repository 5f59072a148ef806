package docstore

import (
	"context"
	"errors"
	"fmt"
)

// Collection is a typed view over one collection of a Store.
type Collection[T any] struct {
	store Store
	name  string
}

func NewCollection[T any](store Store, name string) *Collection[T] {
	return &Collection[T]{store: store, name: name}
}

func (c *Collection[T]) Name() string { return c.name }

func (c *Collection[T]) Insert(ctx context.Context, doc *T) error {
	raw, err := Marshal(doc)
	if err != nil {
		return fmt.Errorf("%s: encode: %w", c.name, err)
	}
	if err := c.store.Insert(ctx, c.name, raw); err != nil {
		return fmt.Errorf("%s: insert: %w", c.name, err)
	}
	return nil
}

// FindOne returns ErrNotFound when nothing matches.
func (c *Collection[T]) FindOne(ctx context.Context, filter Filter) (*T, error) {
	raw, err := c.store.FindOne(ctx, c.name, filter)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%s: find one: %w", c.name, err)
	}
	var out T
	if err := Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", c.name, err)
	}
	return &out, nil
}

func (c *Collection[T]) Find(ctx context.Context, filter Filter, opts FindOptions) ([]T, error) {
	raws, err := c.store.Find(ctx, c.name, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", c.name, err)
	}
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		var doc T
		if err := Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", c.name, err)
		}
		out = append(out, doc)
	}
	return out, nil
}

// UpdateFields returns ErrNotFound when no document matched the filter.
func (c *Collection[T]) UpdateFields(ctx context.Context, filter Filter, fields Fields) (UpdateResult, error) {
	res, err := c.store.UpdateFields(ctx, c.name, filter, fields)
	if err != nil {
		return res, fmt.Errorf("%s: update: %w", c.name, err)
	}
	if res.Matched == 0 {
		return res, ErrNotFound
	}
	return res, nil
}
