// Package orders records shop checkouts and their fulfilment status.
package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/kashoe/chessclub-api/internal/application"
	domain "github.com/kashoe/chessclub-api/internal/domain/order"
	"github.com/kashoe/chessclub-api/internal/domain/validate"
	"github.com/kashoe/chessclub-api/internal/observability"

	"go.opentelemetry.io/otel/attribute"
)

const (
	serviceName         = "order-service"
	useCaseCreate       = "order.create"
	useCaseGet          = "order.get"
	useCaseList         = "order.list"
	useCaseUpdateStatus = "order.update_status"
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
	return &Service{repo: repo, ids: ids, now: now, instr: application.NewInstrument(serviceName, tel)}
}

// Create stores a pending order. Item prices and the total are kept as submitted.
func (s *Service) Create(ctx context.Context, in domain.CreateInput) (_ *domain.Order, err error) {
	ctx, call := s.instr.Begin(ctx, useCaseCreate, attribute.Int("order.items", len(in.Items)))
	defer func() { call.End(err) }()

	if verr := validate.Struct(in); verr != nil {
		return nil, call.Reject("INVALID_INPUT", verr)
	}

	o := domain.New(s.ids.NewID(), in, s.now())
	if ierr := s.repo.Insert(ctx, o); ierr != nil {
		return nil, call.Fail("REPO_INSERT_FAILED", fmt.Errorf("order: insert: %w", ierr))
	}
	call.Span().SetAttributes(
		attribute.String("order.id", o.ID),
		attribute.String("order.status", string(o.Status)),
		attribute.Float64("order.total_amount", o.TotalAmount),
	)
	return o, nil
}

func (s *Service) Get(ctx context.Context, id string) (_ *domain.Order, err error) {
	ctx, call := s.instr.Begin(ctx, useCaseGet, attribute.String("order.id", id))
	defer func() { call.End(err) }()

	o, gerr := s.repo.Get(ctx, id)
	switch {
	case errors.Is(gerr, domain.ErrNotFound):
		return nil, call.Reject("NOT_FOUND", gerr)
	case gerr != nil:
		return nil, call.Fail("REPO_GET_FAILED", fmt.Errorf("order: get: %w", gerr))
	}
	return o, nil
}

func (s *Service) List(ctx context.Context, status *domain.Status) (_ []domain.Order, err error) {
	ctx, call := s.instr.Begin(ctx, useCaseList)
	defer func() { call.End(err) }()

	if status != nil {
		if verr := validate.Enumeration("status", *status); verr != nil {
			return nil, call.Reject("INVALID_FILTER", verr)
		}
	}

	list, lerr := s.repo.List(ctx, status)
	if lerr != nil {
		return nil, call.Fail("REPO_FIND_FAILED", fmt.Errorf("order: list: %w", lerr))
	}
	return list, nil
}

// UpdateStatus writes the new status, and the M-Pesa reference when one is given.
// Any status may follow any other.
func (s *Service) UpdateStatus(ctx context.Context, id string, in domain.StatusInput) (err error) {
	ctx, call := s.instr.Begin(ctx, useCaseUpdateStatus,
		attribute.String("order.id", id),
		attribute.String("order.status", string(in.Status)),
		attribute.Bool("order.has_reference", in.MpesaReference != ""),
	)
	defer func() { call.End(err) }()

	if verr := validate.Struct(in); verr != nil {
		return call.Reject("INVALID_INPUT", verr)
	}

	uerr := s.repo.UpdateStatus(ctx, id, in)
	switch {
	case errors.Is(uerr, domain.ErrNotFound):
		return call.Reject("NOT_FOUND", uerr)
	case uerr != nil:
		return call.Fail("REPO_UPDATE_FAILED", fmt.Errorf("order: update status: %w", uerr))
	}
	return nil
}
