// Package newsletter handles mailing-list sign-ups.
package newsletter

import (
	"context"
	"errors"
	"fmt"

	"github.com/kashoe/chessclub-api/internal/application"
	domain "github.com/kashoe/chessclub-api/internal/domain/newsletter"
	"github.com/kashoe/chessclub-api/internal/domain/validate"
	"github.com/kashoe/chessclub-api/internal/observability"

	"go.opentelemetry.io/otel/attribute"
)

const (
	serviceName      = "newsletter-service"
	useCaseSubscribe = "newsletter.subscribe"
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

// Subscribe creates a subscription, or reactivates the existing one for the same email.
// A reactivated subscription keeps its id and original subscribed_at. created reports
// whether a new document was stored.
func (s *Service) Subscribe(ctx context.Context, in domain.SubscribeInput) (_ *domain.Subscription, created bool, err error) {
	ctx, call := s.instr.Begin(ctx, useCaseSubscribe)
	defer func() { call.End(err) }()

	in.Email = validate.Email(in.Email)
	if verr := validate.Struct(in); verr != nil {
		return nil, false, call.Reject("INVALID_INPUT", verr)
	}

	existing, ferr := s.repo.FindByEmail(ctx, in.Email)
	switch {
	case ferr == nil:
		sub, rerr := s.reactivate(ctx, existing)
		if rerr != nil {
			return nil, false, call.Fail("REPO_UPDATE_FAILED", rerr)
		}
		call.SetStatus("REACTIVATED")
		return sub, false, nil
	case !errors.Is(ferr, domain.ErrNotFound):
		return nil, false, call.Fail("REPO_FIND_FAILED", fmt.Errorf("newsletter: find: %w", ferr))
	}

	sub := domain.New(s.ids.NewID(), in, s.now())
	ierr := s.repo.Insert(ctx, sub)
	switch {
	case ierr == nil:
		call.Span().SetAttributes(attribute.String("newsletter.id", sub.ID))
		return sub, true, nil
	case errors.Is(ierr, domain.ErrAlreadySubscribed):
		// A concurrent request stored the email between the lookup and the insert.
		existing, ferr = s.repo.FindByEmail(ctx, in.Email)
		if ferr != nil {
			return nil, false, call.Fail("REPO_FIND_FAILED", fmt.Errorf("newsletter: find after conflict: %w", ferr))
		}
		sub, rerr := s.reactivate(ctx, existing)
		if rerr != nil {
			return nil, false, call.Fail("REPO_UPDATE_FAILED", rerr)
		}
		call.SetStatus("REACTIVATED_AFTER_CONFLICT")
		return sub, false, nil
	default:
		return nil, false, call.Fail("REPO_INSERT_FAILED", fmt.Errorf("newsletter: insert: %w", ierr))
	}
}

func (s *Service) reactivate(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
	if err := s.repo.Reactivate(ctx, sub.Email); err != nil {
		return nil, fmt.Errorf("newsletter: reactivate: %w", err)
	}
	out := *sub
	out.IsActive = true
	return &out, nil
}
