package newsletter

import (
	"context"
	"fmt"
	"testing"
	"time"

	domain "github.com/kashoe/chessclub-api/internal/domain/newsletter"
	"github.com/kashoe/chessclub-api/internal/domain/validate"
	"github.com/kashoe/chessclub-api/internal/infrastructure/docstore"
	"github.com/kashoe/chessclub-api/internal/infrastructure/memory"
	"github.com/kashoe/chessclub-api/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seqIDs struct{ n int }

func (s *seqIDs) NewID() string {
	s.n++
	return fmt.Sprintf("sub-%d", s.n)
}

type tickingClock struct{ t time.Time }

func (c *tickingClock) now() time.Time {
	c.t = c.t.Add(time.Hour)
	return c.t
}

func TestSubscribeTwiceReactivates(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, docstore.EnsureIndexes(ctx, store))
	repo := docstore.NewNewsletterRepository(store)
	clock := &tickingClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	svc := NewService(repo, &seqIDs{}, clock.now, observability.Nop())

	first, created, err := svc.Subscribe(ctx, domain.SubscribeInput{Email: "fan@example.com"})
	require.NoError(t, err)
	assert.True(t, created)

	_, err = store.UpdateFields(ctx, docstore.CollectionNewsletter, docstore.Filter{"email": "fan@example.com"}, docstore.Fields{"is_active": false})
	require.NoError(t, err)

	second, created, err := svc.Subscribe(ctx, domain.SubscribeInput{Email: "  fan@EXAMPLE.com "})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.SubscribedAt, second.SubscribedAt)
	assert.True(t, second.IsActive)

	assert.Equal(t, 1, store.Len(docstore.CollectionNewsletter))
	stored, err := repo.FindByEmail(ctx, "fan@example.com")
	require.NoError(t, err)
	assert.True(t, stored.IsActive)
}

func TestSubscribeRejectsBadEmail(t *testing.T) {
	svc := NewService(docstore.NewNewsletterRepository(memory.NewStore()), &seqIDs{}, nil, nil)
	_, _, err := svc.Subscribe(context.Background(), domain.SubscribeInput{Email: "not-an-email"})
	assert.ErrorIs(t, err, validate.ErrInvalid)
}

// racingRepo loses the insert race: the lookup misses but the email is already taken.
type racingRepo struct {
	existing    domain.Subscription
	lookups     int
	reactivated string
}

func (r *racingRepo) FindByEmail(_ context.Context, _ string) (*domain.Subscription, error) {
	r.lookups++
	if r.lookups == 1 {
		return nil, domain.ErrNotFound
	}
	s := r.existing
	return &s, nil
}

func (r *racingRepo) Insert(context.Context, *domain.Subscription) error {
	return domain.ErrAlreadySubscribed
}

func (r *racingRepo) Reactivate(_ context.Context, email string) error {
	r.reactivated = email
	return nil
}

func TestSubscribeConflictFallsBackToReactivate(t *testing.T) {
	subscribedAt := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	repo := &racingRepo{existing: domain.Subscription{ID: "old", Email: "a@b.co", SubscribedAt: subscribedAt}}
	svc := NewService(repo, &seqIDs{}, nil, nil)

	sub, created, err := svc.Subscribe(context.Background(), domain.SubscribeInput{Email: "a@b.co"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "old", sub.ID)
	assert.Equal(t, subscribedAt, sub.SubscribedAt)
	assert.True(t, sub.IsActive)
	assert.Equal(t, "a@b.co", repo.reactivated)
}
