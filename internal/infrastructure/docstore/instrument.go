package docstore

import (
	"context"
	"errors"
	"time"

	"github.com/kashoe/chessclub-api/internal/observability"
	"go.mongodb.org/mongo-driver/bson"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type instrumented struct {
	next    Store
	tracer  observability.Tracer
	counter observability.Counter
	hist    observability.Histogram
}

// Instrument wraps next with a span and RED metrics per operation.
func Instrument(next Store, tel observability.Observability) Store {
	if tel == nil {
		tel = observability.Nop()
	}
	return &instrumented{
		next:    next,
		tracer:  tel.Tracer(),
		counter: tel.Metrics().Counter(observability.MStoreOperations),
		hist:    tel.Metrics().Histogram(observability.MStoreOperationDuration),
	}
}

func (s *instrumented) observe(ctx context.Context, collection, op string, fn func(ctx context.Context) error) error {
	ctx, span := s.tracer.Start(ctx, "store."+op,
		attribute.String("db.system", "mongodb"),
		attribute.String("db.collection.name", collection),
		attribute.String("db.operation.name", op),
	)
	start := time.Now()
	err := fn(ctx)

	outcome := "success"
	switch {
	case err == nil:
		span.SetStatus(codes.Ok, "")
	case errors.Is(err, ErrNotFound):
		outcome = "not_found"
	default:
		outcome = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()

	s.counter.Add(1,
		observability.L("collection", collection),
		observability.L("operation", op),
		observability.L("outcome", outcome),
	)
	s.hist.Observe(time.Since(start).Seconds(),
		observability.L("collection", collection),
		observability.L("operation", op),
	)
	return err
}

func (s *instrumented) Insert(ctx context.Context, collection string, doc bson.Raw) error {
	return s.observe(ctx, collection, "insert", func(ctx context.Context) error {
		return s.next.Insert(ctx, collection, doc)
	})
}

func (s *instrumented) FindOne(ctx context.Context, collection string, filter Filter) (bson.Raw, error) {
	var raw bson.Raw
	err := s.observe(ctx, collection, "find_one", func(ctx context.Context) error {
		var err error
		raw, err = s.next.FindOne(ctx, collection, filter)
		return err
	})
	return raw, err
}

func (s *instrumented) Find(ctx context.Context, collection string, filter Filter, opts FindOptions) ([]bson.Raw, error) {
	var raws []bson.Raw
	err := s.observe(ctx, collection, "find", func(ctx context.Context) error {
		var err error
		raws, err = s.next.Find(ctx, collection, filter, opts)
		return err
	})
	return raws, err
}

func (s *instrumented) UpdateFields(ctx context.Context, collection string, filter Filter, fields Fields) (UpdateResult, error) {
	var res UpdateResult
	err := s.observe(ctx, collection, "update", func(ctx context.Context) error {
		var err error
		res, err = s.next.UpdateFields(ctx, collection, filter, fields)
		return err
	})
	return res, err
}

func (s *instrumented) EnsureUnique(ctx context.Context, collection string, field string) error {
	return s.observe(ctx, collection, "create_index", func(ctx context.Context) error {
		return s.next.EnsureUnique(ctx, collection, field)
	})
}

func (s *instrumented) Close(ctx context.Context) error {
	return s.next.Close(ctx)
}
