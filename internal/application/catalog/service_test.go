package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/kashoe/chessclub-api/internal/application"
	domain "github.com/kashoe/chessclub-api/internal/domain/product"
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
	return fmt.Sprintf("prod-%d", s.n)
}

var fixedNow = time.Date(2025, 4, 2, 8, 0, 0, 0, time.UTC)

func newService(t *testing.T) *Service {
	t.Helper()
	repo := docstore.NewProductRepository(memory.NewStore(), 0)
	return NewService(repo, &seqIDs{}, func() time.Time { return fixedNow }, observability.Nop())
}

func validInput() domain.CreateInput {
	price := 3500.0
	return domain.CreateInput{
		Name:        "Club Board",
		Description: "Green and buff vinyl",
		Category:    domain.CategoryChessBoard,
		Price:       &price,
		Stock:       4,
	}
}

func TestCreateThenGet(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	assert.Equal(t, "prod-1", created.ID)
	assert.True(t, created.IsActive)
	assert.Equal(t, fixedNow, created.CreatedAt)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	second, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, second.ID)
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	svc := newService(t)
	in := validInput()
	in.Category = "chess_set"
	in.Price = nil

	_, err := svc.Create(context.Background(), in)
	require.ErrorIs(t, err, validate.ErrInvalid)

	var verr *validate.Error
	require.True(t, errors.As(err, &verr))
	fields := map[string]bool{}
	for _, f := range verr.Fields {
		fields[f.Field] = true
	}
	assert.True(t, fields["category"])
	assert.True(t, fields["price"])
}

func TestListDefaultsToActive(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	kept, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	hidden, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	off := false
	_, err = svc.Update(ctx, hidden.ID, domain.UpdateInput{IsActive: &off})
	require.NoError(t, err)

	list, err := svc.List(ctx, domain.ListFilter{IsActive: true})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, kept.ID, list[0].ID)

	bad := domain.Category("puzzles")
	_, err = svc.List(ctx, domain.ListFilter{IsActive: true, Category: &bad})
	assert.ErrorIs(t, err, validate.ErrInvalid)
}

func TestUpdate(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	p, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	_, err = svc.Update(ctx, p.ID, domain.UpdateInput{})
	assert.ErrorIs(t, err, application.ErrNoFieldsToUpdate)

	stock := 0
	_, err = svc.Update(ctx, "nope", domain.UpdateInput{Stock: &stock})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	name := "Club Board XL"
	updated, err := svc.Update(ctx, p.ID, domain.UpdateInput{Name: &name, Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, 0, updated.Stock)
	assert.Equal(t, p.Description, updated.Description)
	assert.Equal(t, p.CreatedAt, updated.CreatedAt)
}

type brokenRepo struct{ domain.Repository }

func (brokenRepo) Get(context.Context, string) (*domain.Product, error) {
	return nil, errors.New("server selection timeout")
}

func TestGetStoreFailureIsWrapped(t *testing.T) {
	svc := NewService(brokenRepo{}, &seqIDs{}, nil, nil)

	_, err := svc.Get(context.Background(), "p1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "product: get")
}
