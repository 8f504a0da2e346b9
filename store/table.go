package store

import (
	"restaurant_manager/constants"
	"restaurant_manager/model"
	"sync"
	"time"
)

type transitionKey struct {
	status string
	action string
}

type transition struct {
	next          string
	setTime       bool
	clearTime     bool
	clearOrder    bool
	clearCustomer bool
}

// tableTransitions is the full floor-action table. Pairs absent from it are
// not errors in the UI (no action is offered) but applying one through the
// store returns ErrInvalidTransition.
var tableTransitions = map[transitionKey]transition{
	{constants.TABLE_AVAILABLE, constants.ACTION_OCCUPY}:    {next: constants.TABLE_OCCUPIED, setTime: true},
	{constants.TABLE_AVAILABLE, constants.ACTION_RESERVE}:   {next: constants.TABLE_RESERVED},
	{constants.TABLE_OCCUPIED, constants.ACTION_BILL}:       {next: constants.TABLE_BILL},
	{constants.TABLE_RESERVED, constants.ACTION_OCCUPY}:     {next: constants.TABLE_OCCUPIED, setTime: true},
	{constants.TABLE_RESERVED, constants.ACTION_CANCEL}:     {next: constants.TABLE_AVAILABLE, clearCustomer: true},
	{constants.TABLE_BILL, constants.ACTION_PAY}:            {next: constants.TABLE_CLEANING, clearTime: true, clearOrder: true},
	{constants.TABLE_BILL, constants.ACTION_FREE}:           {next: constants.TABLE_AVAILABLE, clearTime: true, clearOrder: true, clearCustomer: true},
	{constants.TABLE_CLEANING, constants.ACTION_AVAILABLE}:  {next: constants.TABLE_AVAILABLE},
}

// actionOrder keeps Actions deterministic.
var actionOrder = []string{
	constants.ACTION_OCCUPY,
	constants.ACTION_RESERVE,
	constants.ACTION_BILL,
	constants.ACTION_PAY,
	constants.ACTION_FREE,
	constants.ACTION_CANCEL,
	constants.ACTION_AVAILABLE,
}

// Actions returns the floor actions a table in the given status offers.
func Actions(status string) []string {
	actions := []string{}
	for _, action := range actionOrder {
		if _, ok := tableTransitions[transitionKey{status, action}]; ok {
			actions = append(actions, action)
		}
	}
	return actions
}

// TableStore tracks per-table occupancy state for one provider.
type TableStore struct {
	mu     sync.Mutex
	tables map[uint]model.Table
	ids    []uint
}

func NewTableStore() *TableStore {
	return &TableStore{tables: make(map[uint]model.Table)}
}

// copyTable clones the pointer fields so callers never alias held state.
func copyTable(table model.Table) model.Table {
	if table.Time != nil {
		t := *table.Time
		table.Time = &t
	}
	if table.OrderItems != nil {
		items := *table.OrderItems
		table.OrderItems = &items
	}
	if table.OrderTotal != nil {
		total := *table.OrderTotal
		table.OrderTotal = &total
	}
	return table
}

func (s *TableStore) Add(table model.Table) {
	if table.Status == "" {
		table.Status = constants.TABLE_AVAILABLE
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.tables[table.ID]; !exists {
		s.ids = append(s.ids, table.ID)
	}
	s.tables[table.ID] = copyTable(table)
}

func (s *TableStore) List() []model.Table {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]model.Table, 0, len(s.ids))
	for _, id := range s.ids {
		result = append(result, copyTable(s.tables[id]))
	}
	return result
}

func (s *TableStore) Get(id uint) (model.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, ok := s.tables[id]
	if !ok {
		return model.Table{}, ErrTableNotFound
	}
	return copyTable(table), nil
}

// Apply runs one floor action. customer is only consulted by reserve, which
// records the reservation holder when given.
func (s *TableStore) Apply(id uint, action, customer string) (model.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, ok := s.tables[id]
	if !ok {
		return model.Table{}, ErrTableNotFound
	}

	t, ok := tableTransitions[transitionKey{table.Status, action}]
	if !ok {
		return model.Table{}, ErrInvalidTransition
	}

	table.Status = t.next
	if t.setTime {
		now := time.Now()
		table.Time = &now
	}
	if t.clearTime {
		table.Time = nil
	}
	if t.clearOrder {
		table.OrderItems = nil
		table.OrderTotal = nil
	}
	if t.clearCustomer {
		table.Customer = ""
	}
	if action == constants.ACTION_RESERVE && customer != "" {
		table.Customer = customer
	}

	s.tables[id] = table
	return copyTable(table), nil
}

// SetOrderSummary caches the open order's size on the table for the floor
// view. It is display-only and cleared by pay/free.
func (s *TableStore) SetOrderSummary(id uint, items int, total float64) (model.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, ok := s.tables[id]
	if !ok {
		return model.Table{}, ErrTableNotFound
	}
	table.OrderItems = &items
	table.OrderTotal = &total
	s.tables[id] = table
	return copyTable(table), nil
}

// Remove drops a table from the floor state (administrative delete).
func (s *TableStore) Remove(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tables, id)
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
}
