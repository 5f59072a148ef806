// Package seed loads the club's sample catalogue and scheduled events.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/kashoe/chessclub-api/internal/domain/event"
	"github.com/kashoe/chessclub-api/internal/domain/product"
	"github.com/kashoe/chessclub-api/internal/observability"
)

type Catalog interface {
	Create(ctx context.Context, in product.CreateInput) (*product.Product, error)
	List(ctx context.Context, filter product.ListFilter) ([]product.Product, error)
}

type EventCatalog interface {
	Create(ctx context.Context, in event.CreateInput) (*event.Event, error)
	List(ctx context.Context, status *event.Status) ([]event.Event, error)
}

// Report counts what a Run stored. Failed items are logged and skipped.
type Report struct {
	Products int
	Events   int
	Failed   int
}

// Run creates the sample products and events through the services so they pass the
// same validation as client requests. Products are skipped when an active product
// exists, events when any event exists.
func Run(ctx context.Context, catalog Catalog, events EventCatalog, now time.Time, log observability.Logger) (Report, error) {
	if log == nil {
		log = observability.NopLogger()
	}
	var rep Report

	existing, err := catalog.List(ctx, product.ListFilter{IsActive: true})
	if err != nil {
		return rep, fmt.Errorf("seed: list products: %w", err)
	}
	if len(existing) > 0 {
		log.Info("seed_skipped", observability.F("collection", "products"), observability.F("existing", len(existing)))
	} else {
		for _, in := range Products() {
			if _, err := catalog.Create(ctx, in); err != nil {
				rep.Failed++
				log.Warn("seed_item_failed", observability.F("name", in.Name), observability.Err(err))
				continue
			}
			rep.Products++
		}
	}

	scheduled, err := events.List(ctx, nil)
	if err != nil {
		return rep, fmt.Errorf("seed: list events: %w", err)
	}
	if len(scheduled) > 0 {
		log.Info("seed_skipped", observability.F("collection", "events"), observability.F("existing", len(scheduled)))
	} else {
		for _, in := range Events(now) {
			if _, err := events.Create(ctx, in); err != nil {
				rep.Failed++
				log.Warn("seed_item_failed", observability.F("title", in.Title), observability.Err(err))
				continue
			}
			rep.Events++
		}
	}

	log.Info("seed_done",
		observability.F("products", rep.Products),
		observability.F("events", rep.Events),
		observability.F("failed", rep.Failed),
	)
	return rep, nil
}
