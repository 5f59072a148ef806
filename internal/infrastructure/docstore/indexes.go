package docstore

import (
	"context"
	"fmt"
)

const (
	CollectionProducts       = "products"
	CollectionEvents         = "events"
	CollectionLessons        = "lesson_registrations"
	CollectionOrders         = "orders"
	CollectionContact        = "contact_submissions"
	CollectionNewsletter     = "newsletter_subscriptions"
	defaultListLimit   int64 = 1000
)

// EnsureIndexes creates the unique indexes the repositories rely on.
func EnsureIndexes(ctx context.Context, store Store) error {
	unique := []struct{ collection, field string }{
		{CollectionProducts, "id"},
		{CollectionEvents, "id"},
		{CollectionLessons, "id"},
		{CollectionOrders, "id"},
		{CollectionContact, "id"},
		{CollectionNewsletter, "id"},
		{CollectionNewsletter, "email"},
	}
	for _, u := range unique {
		if err := store.EnsureUnique(ctx, u.collection, u.field); err != nil {
			return fmt.Errorf("docstore: unique index %s.%s: %w", u.collection, u.field, err)
		}
	}
	return nil
}

func listLimit(limit int64) int64 {
	if limit <= 0 {
		return defaultListLimit
	}
	return limit
}

func byID(id string) Filter { return Filter{"id": id} }
