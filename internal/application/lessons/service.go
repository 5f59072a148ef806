// Package lessons captures lesson sign-ups and tracks their review status.
package lessons

import (
	"context"
	"errors"
	"fmt"

	"github.com/kashoe/chessclub-api/internal/application"
	domain "github.com/kashoe/chessclub-api/internal/domain/lesson"
	"github.com/kashoe/chessclub-api/internal/domain/validate"
	"github.com/kashoe/chessclub-api/internal/observability"

	"go.opentelemetry.io/otel/attribute"
)

const (
	serviceName         = "lesson-service"
	useCaseRegister     = "lesson.register"
	useCaseList         = "lesson.list"
	useCaseUpdateStatus = "lesson.update_status"
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

func (s *Service) Register(ctx context.Context, in domain.CreateInput) (_ *domain.Registration, err error) {
	ctx, call := s.instr.Begin(ctx, useCaseRegister, attribute.String("lesson.type", in.LessonType))
	defer func() { call.End(err) }()

	if verr := validate.Struct(in); verr != nil {
		return nil, call.Reject("INVALID_INPUT", verr)
	}

	r := domain.New(s.ids.NewID(), in, s.now())
	if ierr := s.repo.Insert(ctx, r); ierr != nil {
		return nil, call.Fail("REPO_INSERT_FAILED", fmt.Errorf("lesson: insert: %w", ierr))
	}
	call.Span().SetAttributes(attribute.String("lesson.id", r.ID))
	return r, nil
}

func (s *Service) List(ctx context.Context, status *domain.Status) (_ []domain.Registration, err error) {
	ctx, call := s.instr.Begin(ctx, useCaseList)
	defer func() { call.End(err) }()

	if status != nil {
		if verr := validate.Enumeration("status", *status); verr != nil {
			return nil, call.Reject("INVALID_FILTER", verr)
		}
	}

	list, lerr := s.repo.List(ctx, status)
	if lerr != nil {
		return nil, call.Fail("REPO_FIND_FAILED", fmt.Errorf("lesson: list: %w", lerr))
	}
	return list, nil
}

// UpdateStatus returns domain.ErrNotFound for an unknown id.
func (s *Service) UpdateStatus(ctx context.Context, id string, in domain.StatusInput) (err error) {
	ctx, call := s.instr.Begin(ctx, useCaseUpdateStatus,
		attribute.String("lesson.id", id),
		attribute.String("lesson.status", string(in.Status)),
	)
	defer func() { call.End(err) }()

	if verr := validate.Struct(in); verr != nil {
		return call.Reject("INVALID_INPUT", verr)
	}

	uerr := s.repo.UpdateStatus(ctx, id, in.Status)
	switch {
	case errors.Is(uerr, domain.ErrNotFound):
		return call.Reject("NOT_FOUND", uerr)
	case uerr != nil:
		return call.Fail("REPO_UPDATE_FAILED", fmt.Errorf("lesson: update status: %w", uerr))
	}
	return nil
}
