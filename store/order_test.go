package store

import (
	"restaurant_manager/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoOrder(code, status string) model.Order {
	return model.Order{
		PublicCode: code,
		TableName:  "T1",
		Status:     status,
		Items: []model.OrderItem{
			{Name: "Pad Thai", Quantity: 2, UnitPrice: 9.5},
			{Name: "Green Tea", Quantity: 3, UnitPrice: 2},
		},
	}
}

func TestAddRecomputesTotal(t *testing.T) {
	s := NewOrderStore()

	order := demoOrder("ORD-0001", "pending")
	order.Total = 999 // stale client value must not survive
	require.NoError(t, s.Add(order))

	got, err := s.Get("ORD-0001")
	require.NoError(t, err)
	assert.Equal(t, 25.0, got.Total)
	assert.Equal(t, OrderTotal(got.Items), got.Total)
}

func TestOrderLifecycle(t *testing.T) {
	s := NewOrderStore()
	require.NoError(t, s.Add(demoOrder("ORD-9001", "pending")))

	for _, next := range []string{"cooking", "ready", "delivered"} {
		order, err := s.UpdateStatus("ORD-9001", next)
		require.NoError(t, err)
		assert.Equal(t, next, order.Status)
		assert.Equal(t, 25.0, order.Total, "total must not change across transitions")
	}
}

func TestUpdateStatusOnlyTouchesTarget(t *testing.T) {
	s := NewOrderStore()
	for _, code := range []string{"ORD-1", "ORD-2", "ORD-3", "ORD-4", "ORD-5"} {
		require.NoError(t, s.Add(demoOrder(code, "pending")))
	}

	_, err := s.UpdateStatus("ORD-3", "cooking")
	require.NoError(t, err)

	cooking := 0
	for _, order := range s.List("all") {
		if order.PublicCode == "ORD-3" {
			assert.Equal(t, "cooking", order.Status)
			cooking++
		} else {
			assert.Equal(t, "pending", order.Status)
		}
	}
	assert.Equal(t, 1, cooking)
}

func TestUpdateStatusGuards(t *testing.T) {
	s := NewOrderStore()
	require.NoError(t, s.Add(demoOrder("ORD-1", "pending")))
	_, err := s.UpdateStatus("ORD-1", "cooking")
	require.NoError(t, err)

	tests := []struct {
		name    string
		code    string
		status  string
		wantErr error
	}{
		{"unknown status", "ORD-1", "burnt", ErrUnknownStatus},
		{"unknown order", "ORD-404", "ready", ErrOrderNotFound},
		{"backward edge", "ORD-1", "pending", ErrInvalidTransition},
		{"skipping edge", "ORD-1", "delivered", ErrInvalidTransition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.UpdateStatus(tt.code, tt.status)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// guarded order is untouched
	got, err := s.Get("ORD-1")
	require.NoError(t, err)
	assert.Equal(t, "cooking", got.Status)
}

func TestListFilter(t *testing.T) {
	s := NewOrderStore()
	for _, code := range []string{"ORD-1", "ORD-2", "ORD-3", "ORD-4"} {
		require.NoError(t, s.Add(demoOrder(code, "pending")))
	}
	ready := demoOrder("ORD-5", "pending")
	require.NoError(t, s.Add(ready))
	_, err := s.UpdateStatus("ORD-5", "cooking")
	require.NoError(t, err)
	_, err = s.UpdateStatus("ORD-5", "ready")
	require.NoError(t, err)

	assert.Len(t, s.List("ready"), 1)
	assert.Len(t, s.List("all"), 5)
	assert.Len(t, s.List(""), 5)
	assert.Len(t, s.List("delivered"), 0)
}

func TestListReturnsCopies(t *testing.T) {
	s := NewOrderStore()
	require.NoError(t, s.Add(demoOrder("ORD-1", "pending")))

	listed := s.List("all")
	listed[0].Status = "delivered"
	listed[0].Items[0].Quantity = 99

	got, err := s.Get("ORD-1")
	require.NoError(t, err)
	assert.Equal(t, "pending", got.Status)
	assert.Equal(t, 2, got.Items[0].Quantity)
}

func TestSetPaymentMethod(t *testing.T) {
	s := NewOrderStore()
	require.NoError(t, s.Add(demoOrder("ORD-1", "pending")))

	order, err := s.SetPaymentMethod("ORD-1", "card")
	require.NoError(t, err)
	assert.Equal(t, "card", order.PaymentMethod)

	_, err = s.SetPaymentMethod("ORD-1", "crypto")
	assert.ErrorIs(t, err, ErrUnknownStatus)

	_, err = s.SetPaymentMethod("ORD-404", "cash")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestDuplicateAddRejected(t *testing.T) {
	s := NewOrderStore()
	require.NoError(t, s.Add(demoOrder("ORD-1", "pending")))
	assert.ErrorIs(t, s.Add(demoOrder("ORD-1", "pending")), ErrDuplicateOrder)
}

func TestNextOrderStatus(t *testing.T) {
	next, ok := NextOrderStatus("pending")
	assert.True(t, ok)
	assert.Equal(t, "cooking", next)

	_, ok = NextOrderStatus("delivered")
	assert.False(t, ok)
}
