// Package contact stores messages sent through the contact form.
package contact

import (
	"context"
	"fmt"

	"github.com/kashoe/chessclub-api/internal/application"
	domain "github.com/kashoe/chessclub-api/internal/domain/contact"
	"github.com/kashoe/chessclub-api/internal/domain/validate"
	"github.com/kashoe/chessclub-api/internal/observability"

	"go.opentelemetry.io/otel/attribute"
)

const (
	serviceName   = "contact-service"
	useCaseSubmit = "contact.submit"
	useCaseList   = "contact.list"
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

func (s *Service) Submit(ctx context.Context, in domain.CreateInput) (_ *domain.Submission, err error) {
	ctx, call := s.instr.Begin(ctx, useCaseSubmit)
	defer func() { call.End(err) }()

	if verr := validate.Struct(in); verr != nil {
		return nil, call.Reject("INVALID_INPUT", verr)
	}

	sub := domain.New(s.ids.NewID(), in, s.now())
	if ierr := s.repo.Insert(ctx, sub); ierr != nil {
		return nil, call.Fail("REPO_INSERT_FAILED", fmt.Errorf("contact: insert: %w", ierr))
	}
	call.Span().SetAttributes(attribute.String("contact.id", sub.ID))
	return sub, nil
}

func (s *Service) List(ctx context.Context) (_ []domain.Submission, err error) {
	ctx, call := s.instr.Begin(ctx, useCaseList)
	defer func() { call.End(err) }()

	list, lerr := s.repo.List(ctx)
	if lerr != nil {
		return nil, call.Fail("REPO_FIND_FAILED", fmt.Errorf("contact: list: %w", lerr))
	}
	return list, nil
}
