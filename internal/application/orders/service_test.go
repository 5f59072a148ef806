package orders

import (
	"context"
	"testing"
	"time"

	domain "github.com/kashoe/chessclub-api/internal/domain/order"
	"github.com/kashoe/chessclub-api/internal/domain/validate"
	"github.com/kashoe/chessclub-api/internal/infrastructure/docstore"
	"github.com/kashoe/chessclub-api/internal/infrastructure/id"
	"github.com/kashoe/chessclub-api/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *Service {
	return NewService(docstore.NewOrderRepository(memory.NewStore(), 0), id.NewUUIDGenerator(), nil, nil)
}

func boardOrder() domain.CreateInput {
	total := 7000.0
	return domain.CreateInput{
		CustomerName:  "Jane Wanjiku",
		CustomerEmail: "jane@example.com",
		CustomerPhone: "254700000000",
		Items:         []domain.Item{{ProductID: "p1", ProductName: "Board", Quantity: 2, Price: 3500}},
		TotalAmount:   &total,
	}
}

func TestCreatePendingOrder(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	o, err := svc.Create(ctx, boardOrder())
	require.NoError(t, err)
	assert.NotEmpty(t, o.ID)
	assert.Equal(t, domain.StatusPending, o.Status)
	assert.Nil(t, o.MpesaReference)
	assert.WithinDuration(t, time.Now(), o.CreatedAt, 5*time.Second)

	got, err := svc.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, o, got)
}

func TestCreateRejectsEmptyOrBadItems(t *testing.T) {
	svc := newService()

	in := boardOrder()
	in.Items = nil
	_, err := svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, validate.ErrInvalid)

	in = boardOrder()
	in.Items[0].Quantity = 0
	_, err = svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, validate.ErrInvalid)
}

func TestUpdateStatusPersistsReference(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	o, err := svc.Create(ctx, boardOrder())
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(ctx, o.ID, domain.StatusInput{Status: domain.StatusPaid, MpesaReference: "XYZ123"}))

	got, err := svc.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, got.Status)
	require.NotNil(t, got.MpesaReference)
	assert.Equal(t, "XYZ123", *got.MpesaReference)

	paid := domain.StatusPaid
	list, err := svc.List(ctx, &paid)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestUpdateStatusErrors(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	err := svc.UpdateStatus(ctx, "missing", domain.StatusInput{Status: domain.StatusShipped})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.UpdateStatus(ctx, "missing", domain.StatusInput{Status: "lost"})
	assert.ErrorIs(t, err, validate.ErrInvalid)
}
