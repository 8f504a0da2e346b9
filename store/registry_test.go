package store

import (
	"restaurant_manager/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryIsolatesProviders(t *testing.T) {
	r := NewRegistry()
	r.Floor(1).Tables.Add(model.Table{DTO: model.DTO{ID: 10}, Name: "T1", ProviderId: 1})
	r.Floor(2).Tables.Add(model.Table{DTO: model.DTO{ID: 20}, Name: "T1", ProviderId: 2})

	assert.Same(t, r.Floor(1), r.Floor(1))
	assert.NotSame(t, r.Floor(1), r.Floor(2))

	// a tenant never sees another tenant's table
	_, err := r.Floor(1).Tables.Get(20)
	assert.ErrorIs(t, err, ErrTableNotFound)

	// removing a foreign id from the wrong floor is a no-op for the owner
	r.Floor(1).Tables.Remove(20)
	got, err := r.Floor(2).Tables.Get(20)
	require.NoError(t, err)
	assert.Equal(t, "T1", got.Name)
	assert.Equal(t, uint(2), got.ProviderId)
}

func TestRegistryOrdersAreScoped(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Floor(1).Orders.Add(model.Order{
		PublicCode: "ORD-A1",
		TableName:  "T1",
		Status:     "pending",
		ProviderId: 1,
	}))

	_, err := r.Floor(2).Orders.Get("ORD-A1")
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.Empty(t, r.Floor(2).Orders.List("all"))
}
