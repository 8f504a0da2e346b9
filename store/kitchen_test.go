package store

import (
	"restaurant_manager/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemsWith(statuses ...string) []model.KitchenItem {
	items := make([]model.KitchenItem, len(statuses))
	for i, status := range statuses {
		items[i] = model.KitchenItem{
			DTO:      model.DTO{ID: uint(i + 1)},
			Name:     "Item",
			Quantity: 1,
			Status:   status,
		}
	}
	return items
}

// Exhaustive derivation over every 3-item status combination.
func TestDeriveStatusGrid(t *testing.T) {
	statuses := []string{"pending", "cooking", "ready"}
	for _, a := range statuses {
		for _, b := range statuses {
			for _, c := range statuses {
				got := DeriveStatus(itemsWith(a, b, c))

				allReady := a == "ready" && b == "ready" && c == "ready"
				anyStarted := a != "pending" || b != "pending" || c != "pending"

				want := "pending"
				if allReady {
					want = "ready"
				} else if anyStarted {
					want = "cooking"
				}
				assert.Equalf(t, want, got, "items %s/%s/%s", a, b, c)
			}
		}
	}
}

func TestDeriveStatusEmpty(t *testing.T) {
	assert.Equal(t, "pending", DeriveStatus(nil))
}

func TestKitchenScenario(t *testing.T) {
	s := NewKitchenStore()
	s.Add(model.KitchenOrder{
		DTO:       model.DTO{ID: 10},
		OrderId:   10,
		TableName: "T3",
		Priority:  "high",
		Items:     itemsWith("pending", "cooking"),
	})

	ticket, err := s.Get(10)
	require.NoError(t, err)
	assert.Equal(t, "cooking", DeriveStatus(ticket.Items))
	assert.False(t, CanNotify(ticket.Items))

	// move both items to ready, through cooking where needed
	_, err = s.UpdateItemStatus(10, 1, "cooking")
	require.NoError(t, err)
	_, err = s.UpdateItemStatus(10, 1, "ready")
	require.NoError(t, err)
	ticket, err = s.UpdateItemStatus(10, 2, "ready")
	require.NoError(t, err)

	assert.Equal(t, "ready", DeriveStatus(ticket.Items))
	assert.True(t, CanNotify(ticket.Items))
}

func TestUpdateItemStatusGuards(t *testing.T) {
	s := NewKitchenStore()
	s.Add(model.KitchenOrder{DTO: model.DTO{ID: 1}, Items: itemsWith("pending")})

	_, err := s.UpdateItemStatus(1, 1, "raw")
	assert.ErrorIs(t, err, ErrUnknownStatus)

	_, err = s.UpdateItemStatus(1, 1, "ready")
	assert.ErrorIs(t, err, ErrInvalidTransition, "pending cannot skip to ready")

	_, err = s.UpdateItemStatus(1, 99, "cooking")
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, err = s.UpdateItemStatus(42, 1, "cooking")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestMarkNotifiedGate(t *testing.T) {
	s := NewKitchenStore()
	s.Add(model.KitchenOrder{DTO: model.DTO{ID: 1}, Items: itemsWith("cooking", "ready")})

	_, err := s.MarkNotified(1)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = s.UpdateItemStatus(1, 1, "ready")
	require.NoError(t, err)

	ticket, err := s.MarkNotified(1)
	require.NoError(t, err)
	assert.True(t, ticket.Notified)
}

func TestGetReturnsCopies(t *testing.T) {
	s := NewKitchenStore()
	s.Add(model.KitchenOrder{DTO: model.DTO{ID: 1}, Items: itemsWith("pending")})

	ticket, err := s.Get(1)
	require.NoError(t, err)
	ticket.Items[0].Status = "ready"

	again, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "pending", again.Items[0].Status)
}
