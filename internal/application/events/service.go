// Package events schedules club events.
package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/kashoe/chessclub-api/internal/application"
	domain "github.com/kashoe/chessclub-api/internal/domain/event"
	"github.com/kashoe/chessclub-api/internal/domain/validate"
	"github.com/kashoe/chessclub-api/internal/observability"

	"go.opentelemetry.io/otel/attribute"
)

const (
	serviceName   = "event-service"
	useCaseCreate = "event.create"
	useCaseGet    = "event.get"
	useCaseList   = "event.list"
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

func (s *Service) Create(ctx context.Context, in domain.CreateInput) (_ *domain.Event, err error) {
	ctx, call := s.instr.Begin(ctx, useCaseCreate)
	defer func() { call.End(err) }()

	if verr := validate.Struct(in); verr != nil {
		return nil, call.Reject("INVALID_INPUT", verr)
	}

	e := domain.New(s.ids.NewID(), in, s.now())
	if ierr := s.repo.Insert(ctx, e); ierr != nil {
		return nil, call.Fail("REPO_INSERT_FAILED", fmt.Errorf("event: insert: %w", ierr))
	}
	call.Span().SetAttributes(attribute.String("event.id", e.ID))
	return e, nil
}

func (s *Service) Get(ctx context.Context, id string) (_ *domain.Event, err error) {
	ctx, call := s.instr.Begin(ctx, useCaseGet, attribute.String("event.id", id))
	defer func() { call.End(err) }()

	e, gerr := s.repo.Get(ctx, id)
	switch {
	case errors.Is(gerr, domain.ErrNotFound):
		return nil, call.Reject("NOT_FOUND", gerr)
	case gerr != nil:
		return nil, call.Fail("REPO_GET_FAILED", fmt.Errorf("event: get: %w", gerr))
	}
	return e, nil
}

// List returns events with the latest event_date first, optionally filtered by status.
func (s *Service) List(ctx context.Context, status *domain.Status) (_ []domain.Event, err error) {
	ctx, call := s.instr.Begin(ctx, useCaseList)
	defer func() { call.End(err) }()

	if status != nil {
		call.Span().SetAttributes(attribute.String("event.status", string(*status)))
		if verr := validate.Enumeration("status", *status); verr != nil {
			return nil, call.Reject("INVALID_FILTER", verr)
		}
	}

	list, lerr := s.repo.List(ctx, status)
	if lerr != nil {
		return nil, call.Fail("REPO_FIND_FAILED", fmt.Errorf("event: list: %w", lerr))
	}
	return list, nil
}
