// Package catalog manages the shop's products.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/kashoe/chessclub-api/internal/application"
	domain "github.com/kashoe/chessclub-api/internal/domain/product"
	"github.com/kashoe/chessclub-api/internal/domain/validate"
	"github.com/kashoe/chessclub-api/internal/observability"

	"go.opentelemetry.io/otel/attribute"
)

const (
	serviceName   = "product-service"
	useCaseCreate = "product.create"
	useCaseGet    = "product.get"
	useCaseList   = "product.list"
	useCaseUpdate = "product.update"
)

type Service struct {
	repo  domain.Repository
	ids   application.IDGenerator
	now   application.Clock
	instr *application.Instrument
}

func NewService(repo domain.Repository, ids application.IDGenerator, now application.Clock, tel observability.Observability) *Service {
	if now == nil {
		now = application.SystemClock
	}
	return &Service{
		repo:  repo,
		ids:   ids,
		now:   now,
		instr: application.NewInstrument(serviceName, tel),
	}
}

func (s *Service) Create(ctx context.Context, in domain.CreateInput) (_ *domain.Product, err error) {
	ctx, call := s.instr.Begin(ctx, useCaseCreate, attribute.String("product.category", string(in.Category)))
	defer func() { call.End(err) }()

	if verr := validate.Struct(in); verr != nil {
		return nil, call.Reject("INVALID_INPUT", verr)
	}

	p := domain.New(s.ids.NewID(), in, s.now())
	if ierr := s.repo.Insert(ctx, p); ierr != nil {
		return nil, call.Fail("REPO_INSERT_FAILED", fmt.Errorf("product: insert: %w", ierr))
	}
	call.Span().SetAttributes(attribute.String("product.id", p.ID))
	return p, nil
}

func (s *Service) Get(ctx context.Context, id string) (_ *domain.Product, err error) {
	ctx, call := s.instr.Begin(ctx, useCaseGet, attribute.String("product.id", id))
	defer func() { call.End(err) }()

	p, gerr := s.repo.Get(ctx, id)
	switch {
	case errors.Is(gerr, domain.ErrNotFound):
		return nil, call.Reject("NOT_FOUND", gerr)
	case gerr != nil:
		return nil, call.Fail("REPO_GET_FAILED", fmt.Errorf("product: get: %w", gerr))
	}
	return p, nil
}

// List returns products matching filter. IsActive is always applied.
func (s *Service) List(ctx context.Context, filter domain.ListFilter) (_ []domain.Product, err error) {
	attrs := []attribute.KeyValue{attribute.Bool("product.is_active", filter.IsActive)}
	if filter.Category != nil {
		attrs = append(attrs, attribute.String("product.category", string(*filter.Category)))
	}
	ctx, call := s.instr.Begin(ctx, useCaseList, attrs...)
	defer func() { call.End(err) }()

	if filter.Category != nil {
		if verr := validate.Enumeration("category", *filter.Category); verr != nil {
			return nil, call.Reject("INVALID_FILTER", verr)
		}
	}

	products, lerr := s.repo.List(ctx, filter)
	if lerr != nil {
		return nil, call.Fail("REPO_FIND_FAILED", fmt.Errorf("product: list: %w", lerr))
	}
	call.Span().SetAttributes(attribute.Int("product.count", len(products)))
	return products, nil
}

// Update applies the supplied fields and returns the reloaded product.
func (s *Service) Update(ctx context.Context, id string, in domain.UpdateInput) (_ *domain.Product, err error) {
	ctx, call := s.instr.Begin(ctx, useCaseUpdate, attribute.String("product.id", id))
	defer func() { call.End(err) }()

	if verr := validate.Struct(in); verr != nil {
		return nil, call.Reject("INVALID_INPUT", verr)
	}
	fields := in.Fields()
	if len(fields) == 0 {
		return nil, call.Reject("NO_FIELDS", application.ErrNoFieldsToUpdate)
	}

	uerr := s.repo.Update(ctx, id, fields)
	switch {
	case errors.Is(uerr, domain.ErrNotFound):
		return nil, call.Reject("NOT_FOUND", uerr)
	case uerr != nil:
		return nil, call.Fail("REPO_UPDATE_FAILED", fmt.Errorf("product: update: %w", uerr))
	}

	p, gerr := s.repo.Get(ctx, id)
	switch {
	case errors.Is(gerr, domain.ErrNotFound):
		return nil, call.Reject("NOT_FOUND", gerr)
	case gerr != nil:
		return nil, call.Fail("REPO_GET_FAILED", fmt.Errorf("product: reload: %w", gerr))
	}
	return p, nil
}
