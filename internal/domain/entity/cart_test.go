package entity

import (
	"testing"

	domainerrors "shop/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddMergesLines(t *testing.T) {
	cart := &Cart{}
	productID := uuid.New()
	price := decimal.NewFromInt(1000)

	cart.Add(productID, 2, price)
	cart.Add(productID, 1, price)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.True(t, decimal.NewFromInt(3000).Equal(cart.Items[0].Subtotal))
	assert.True(t, decimal.NewFromInt(3000).Equal(cart.Total()))
}

func TestCart_AddThenReduceSameQuantityRemovesLine(t *testing.T) {
	cart := &Cart{}
	productID := uuid.New()
	other := uuid.New()
	price := decimal.NewFromInt(250)

	cart.Add(other, 1, price)
	cart.Add(productID, 4, price)

	require.NoError(t, cart.Reduce(productID, 4))

	assert.Equal(t, -1, cart.Find(productID))
	assert.Len(t, cart.Items, 1)
}

func TestCart_ReducePartial(t *testing.T) {
	cart := &Cart{}
	productID := uuid.New()
	price := decimal.RequireFromString("19.99")

	cart.Add(productID, 3, price)
	require.NoError(t, cart.Reduce(productID, 1))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.True(t, decimal.RequireFromString("39.98").Equal(cart.Items[0].Subtotal))
}

func TestCart_ReduceAfterPriceChange(t *testing.T) {
	cart := &Cart{}
	productID := uuid.New()

	// Added cheap, then the price went up.
	cart.Add(productID, 2, decimal.NewFromInt(100))
	cart.Add(productID, 1, decimal.NewFromInt(400))
	require.True(t, decimal.NewFromInt(600).Equal(cart.Total()))

	require.NoError(t, cart.Reduce(productID, 2))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.True(t, decimal.NewFromInt(200).Equal(cart.Items[0].Subtotal))
	assert.True(t, cart.Items[0].Subtotal.IsPositive())
}

func TestCart_ReduceRoundsToCents(t *testing.T) {
	cart := &Cart{}
	productID := uuid.New()

	cart.Add(productID, 1, decimal.NewFromInt(10))
	cart.Add(productID, 2, decimal.NewFromInt(5))

	require.NoError(t, cart.Reduce(productID, 1))

	assert.True(t, decimal.RequireFromString("13.33").Equal(cart.Items[0].Subtotal))
}

func TestCart_ReduceErrors(t *testing.T) {
	productID := uuid.New()
	price := decimal.NewFromInt(10)

	tests := []struct {
		name    string
		setup   func(c *Cart)
		qty     int
		wantErr error
	}{
		{
			name:    "never added",
			setup:   func(*Cart) {},
			qty:     1,
			wantErr: domainerrors.ErrCartItemNotFound,
		},
		{
			name:    "more than in cart",
			setup:   func(c *Cart) { c.Add(productID, 2, price) },
			qty:     3,
			wantErr: domainerrors.ErrExceedsCartQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := &Cart{}
			tt.setup(cart)

			err := cart.Reduce(productID, tt.qty)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestCart_Remove(t *testing.T) {
	cart := &Cart{}
	productID := uuid.New()
	cart.Add(productID, 1, decimal.NewFromInt(5))

	require.NoError(t, cart.Remove(productID))
	assert.True(t, cart.IsEmpty())
	assert.True(t, errors.Is(cart.Remove(productID), domainerrors.ErrCartItemNotFound))
}

func TestNewOrderFromTransaction(t *testing.T) {
	productID := uuid.New()
	txn := &Transaction{
		Reference: "txn_abc_1",
		UserID:    uuid.New(),
		Amount:    decimal.NewFromInt(3000),
		Lines: []TransactionLine{
			{ProductID: productID, Name: "Mug", Quantity: 3, Price: decimal.NewFromInt(1000)},
		},
	}

	order := NewOrderFromTransaction(txn)

	assert.Equal(t, txn.UserID, order.UserID)
	assert.Equal(t, "txn_abc_1", order.TransactionRef)
	assert.Equal(t, OrderProcessing, order.Status)
	assert.True(t, txn.Amount.Equal(order.Total))
	require.Len(t, order.Lines, 1)
	assert.Equal(t, productID, order.Lines[0].ProductID)
	assert.True(t, SumLines(txn.Lines).Equal(order.Total))
}

func TestParseOrderStatus(t *testing.T) {
	for _, s := range []string{"pending", "completed", "processing", "delivered", "cancelled"} {
		status, ok := ParseOrderStatus(s)
		assert.True(t, ok, s)
		assert.Equal(t, OrderStatus(s), status)
	}

	_, ok := ParseOrderStatus("shipped")
	assert.False(t, ok)
}
