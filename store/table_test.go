package store

import (
	"restaurant_manager/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floorWith(status string) *TableStore {
	s := NewTableStore()
	now := time.Now()
	items, total := 3, 42.5
	s.Add(model.Table{
		DTO:        model.DTO{ID: 1},
		Name:       "T1",
		Capacity:   4,
		Status:     status,
		Time:       &now,
		Customer:   "Nguyen",
		OrderItems: &items,
		OrderTotal: &total,
	})
	return s
}

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		from   string
		action string
		to     string
	}{
		{"available", "occupy", "occupied"},
		{"available", "reserve", "reserved"},
		{"occupied", "bill", "bill"},
		{"reserved", "occupy", "occupied"},
		{"reserved", "cancel", "available"},
		{"bill", "pay", "cleaning"},
		{"bill", "free", "available"},
		{"cleaning", "available", "available"},
	}
	for _, tt := range tests {
		t.Run(tt.from+"_"+tt.action, func(t *testing.T) {
			// determinism: same start and action, same result, twice
			for run := 0; run < 2; run++ {
				s := floorWith(tt.from)
				table, err := s.Apply(1, tt.action, "")
				require.NoError(t, err)
				assert.Equal(t, tt.to, table.Status)
			}
		})
	}
}

func TestOccupyPayCleanCycle(t *testing.T) {
	s := NewTableStore()
	s.Add(model.Table{DTO: model.DTO{ID: 7}, Name: "T7", Capacity: 2})

	table, err := s.Apply(7, "occupy", "")
	require.NoError(t, err)
	assert.Equal(t, "occupied", table.Status)
	require.NotNil(t, table.Time)

	_, err = s.SetOrderSummary(7, 2, 19.0)
	require.NoError(t, err)

	table, err = s.Apply(7, "bill", "")
	require.NoError(t, err)
	assert.Equal(t, "bill", table.Status)

	table, err = s.Apply(7, "pay", "")
	require.NoError(t, err)
	assert.Equal(t, "cleaning", table.Status)
	assert.Nil(t, table.Time)
	assert.Nil(t, table.OrderItems)
	assert.Nil(t, table.OrderTotal)

	table, err = s.Apply(7, "available", "")
	require.NoError(t, err)
	assert.Equal(t, "available", table.Status)
}

func TestReserveThenCancelClearsCustomer(t *testing.T) {
	s := NewTableStore()
	s.Add(model.Table{DTO: model.DTO{ID: 2}, Name: "T2", Capacity: 4})

	table, err := s.Apply(2, "reserve", "Linh")
	require.NoError(t, err)
	assert.Equal(t, "reserved", table.Status)
	assert.Equal(t, "Linh", table.Customer)
	assert.Nil(t, table.Time, "base reserve flow sets no time")

	table, err = s.Apply(2, "cancel", "")
	require.NoError(t, err)
	assert.Equal(t, "available", table.Status)
	assert.Empty(t, table.Customer)
}

func TestFreeClearsEverything(t *testing.T) {
	s := floorWith("bill")

	table, err := s.Apply(1, "free", "")
	require.NoError(t, err)
	assert.Equal(t, "available", table.Status)
	assert.Nil(t, table.Time)
	assert.Nil(t, table.OrderItems)
	assert.Nil(t, table.OrderTotal)
	assert.Empty(t, table.Customer)
}

func TestUndefinedPairRejected(t *testing.T) {
	tests := []struct {
		from   string
		action string
	}{
		{"available", "pay"},
		{"occupied", "occupy"},
		{"occupied", "reserve"},
		{"cleaning", "bill"},
		{"reserved", "free"},
		{"bill", "occupy"},
	}
	for _, tt := range tests {
		t.Run(tt.from+"_"+tt.action, func(t *testing.T) {
			s := floorWith(tt.from)
			_, err := s.Apply(1, tt.action, "")
			assert.ErrorIs(t, err, ErrInvalidTransition)
		})
	}

	s := NewTableStore()
	_, err := s.Apply(99, "occupy", "")
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestActions(t *testing.T) {
	assert.Equal(t, []string{"occupy", "reserve"}, Actions("available"))
	assert.Equal(t, []string{"bill"}, Actions("occupied"))
	assert.Equal(t, []string{"occupy", "cancel"}, Actions("reserved"))
	assert.Equal(t, []string{"pay", "free"}, Actions("bill"))
	assert.Equal(t, []string{"available"}, Actions("cleaning"))
	assert.Empty(t, Actions("nonsense"))
}

func TestRemove(t *testing.T) {
	s := floorWith("available")
	s.Remove(1)
	assert.Empty(t, s.List())
	_, err := s.Get(1)
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestTableCopiesDoNotAliasStore(t *testing.T) {
	s := floorWith("occupied")

	listed := s.List()
	require.Len(t, listed, 1)
	*listed[0].Time = time.Time{}
	*listed[0].OrderItems = 99
	*listed[0].OrderTotal = -1
	listed[0].Customer = "Pham"

	got, err := s.Get(1)
	require.NoError(t, err)
	assert.False(t, got.Time.IsZero())
	assert.Equal(t, 3, *got.OrderItems)
	assert.Equal(t, 42.5, *got.OrderTotal)
	assert.Equal(t, "Nguyen", got.Customer)

	// the same holds for the snapshots Apply and SetOrderSummary return
	applied, err := s.Apply(1, "bill", "")
	require.NoError(t, err)
	*applied.OrderTotal = 0

	got, err = s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 42.5, *got.OrderTotal)
}
