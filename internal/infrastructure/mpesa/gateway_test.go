package mpesa

import (
	"context"
	"testing"

	"github.com/kashoe/chessclub-api/internal/domain/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitiateEchoesRequest(t *testing.T) {
	amount := 7000.0
	g := NewGateway(nil)

	res, err := g.Initiate(context.Background(), payment.InitiateRequest{
		PhoneNumber: "254700000000", Amount: &amount, OrderID: "o1",
	})
	require.NoError(t, err)
	assert.Equal(t, &payment.InitiateResult{
		Message:     "M-Pesa integration placeholder",
		OrderID:     "o1",
		Amount:      7000,
		PhoneNumber: "254700000000",
		Status:      payment.StatusPending,
	}, res)
}

func TestHandleCallbackNeverReconciles(t *testing.T) {
	g := NewGateway(nil)
	rec, err := g.HandleCallback(context.Background(), map[string]any{"Body": map[string]any{"stkCallback": "x"}})
	require.NoError(t, err)
	assert.Nil(t, rec)
}
