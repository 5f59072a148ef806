// Package docstore persists entities as documents in named collections.
package docstore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

var (
	ErrNotFound  = errors.New("docstore: document not found")
	ErrDuplicate = errors.New("docstore: duplicate key")
)

// Filter is an equality match on top-level fields.
type Filter = bson.M

// Fields is a partial set-update keyed by stored field names.
type Fields = bson.M

type Sort struct {
	Field      string
	Descending bool
}

type FindOptions struct {
	Sort  []Sort
	Limit int64
}

type UpdateResult struct {
	Matched  int64
	Modified int64
}

// Store is the raw document port. Documents cross it already encoded with Registry,
// so every backend sees timestamps as ISO-8601 strings.
type Store interface {
	Insert(ctx context.Context, collection string, doc bson.Raw) error
	FindOne(ctx context.Context, collection string, filter Filter) (bson.Raw, error)
	Find(ctx context.Context, collection string, filter Filter, opts FindOptions) ([]bson.Raw, error)
	// UpdateFields applies fields to the first matching document. A zero Matched count
	// means no document matched; Matched without Modified means the update was a no-op.
	UpdateFields(ctx context.Context, collection string, filter Filter, fields Fields) (UpdateResult, error)
	EnsureUnique(ctx context.Context, collection string, field string) error
	Close(ctx context.Context) error
}
