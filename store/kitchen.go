package store

import (
	"restaurant_manager/constants"
	"restaurant_manager/model"
	"sync"
)

var kitchenStatusFlow = map[string]string{
	constants.KITCHEN_PENDING: constants.KITCHEN_COOKING,
	constants.KITCHEN_COOKING: constants.KITCHEN_READY,
}

func IsKitchenStatus(status string) bool {
	if _, ok := kitchenStatusFlow[status]; ok {
		return true
	}
	return status == constants.KITCHEN_READY
}

// DeriveStatus computes a ticket's status from its items: ready iff all items
// are ready, cooking iff any item has started, pending otherwise. It is
// recomputed on every read and never stored.
func DeriveStatus(items []model.KitchenItem) string {
	if len(items) == 0 {
		return constants.KITCHEN_PENDING
	}
	allReady := true
	anyStarted := false
	for _, item := range items {
		if item.Status != constants.KITCHEN_READY {
			allReady = false
		}
		if item.Status == constants.KITCHEN_COOKING || item.Status == constants.KITCHEN_READY {
			anyStarted = true
		}
	}
	if allReady {
		return constants.KITCHEN_READY
	}
	if anyStarted {
		return constants.KITCHEN_COOKING
	}
	return constants.KITCHEN_PENDING
}

// CanNotify reports whether the ticket is eligible for the notify action:
// every item must be ready.
func CanNotify(items []model.KitchenItem) bool {
	return DeriveStatus(items) == constants.KITCHEN_READY
}

// KitchenStore tracks per-item prep status within each ticket for one
// provider, keyed by ticket id.
type KitchenStore struct {
	mu      sync.Mutex
	tickets map[uint]model.KitchenOrder
	ids     []uint
}

func NewKitchenStore() *KitchenStore {
	return &KitchenStore{tickets: make(map[uint]model.KitchenOrder)}
}

func (s *KitchenStore) Add(ticket model.KitchenOrder) {
	for i := range ticket.Items {
		if ticket.Items[i].Status == "" {
			ticket.Items[i].Status = constants.KITCHEN_PENDING
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.tickets[ticket.ID]; !exists {
		s.ids = append(s.ids, ticket.ID)
	}
	s.tickets[ticket.ID] = ticket
}

func (s *KitchenStore) List() []model.KitchenOrder {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]model.KitchenOrder, 0, len(s.ids))
	for _, id := range s.ids {
		result = append(result, copyTicket(s.tickets[id]))
	}
	return result
}

func (s *KitchenStore) Get(id uint) (model.KitchenOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ticket, ok := s.tickets[id]
	if !ok {
		return model.KitchenOrder{}, ErrOrderNotFound
	}
	return copyTicket(ticket), nil
}

// UpdateItemStatus moves one item along pending -> cooking -> ready.
func (s *KitchenStore) UpdateItemStatus(ticketID, itemID uint, newStatus string) (model.KitchenOrder, error) {
	if !IsKitchenStatus(newStatus) {
		return model.KitchenOrder{}, ErrUnknownStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ticket, ok := s.tickets[ticketID]
	if !ok {
		return model.KitchenOrder{}, ErrOrderNotFound
	}

	found := false
	items := make([]model.KitchenItem, len(ticket.Items))
	copy(items, ticket.Items)
	for i, item := range items {
		if item.ID != itemID {
			continue
		}
		if next, ok := kitchenStatusFlow[item.Status]; !ok || next != newStatus {
			return model.KitchenOrder{}, ErrInvalidTransition
		}
		items[i].Status = newStatus
		found = true
		break
	}
	if !found {
		return model.KitchenOrder{}, ErrItemNotFound
	}

	ticket.Items = items
	s.tickets[ticketID] = ticket
	return copyTicket(ticket), nil
}

// MarkNotified records that the waiter was called. Only legal once every
// item is ready.
func (s *KitchenStore) MarkNotified(ticketID uint) (model.KitchenOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ticket, ok := s.tickets[ticketID]
	if !ok {
		return model.KitchenOrder{}, ErrOrderNotFound
	}
	if !CanNotify(ticket.Items) {
		return model.KitchenOrder{}, ErrInvalidTransition
	}
	ticket.Notified = true
	s.tickets[ticketID] = ticket
	return copyTicket(ticket), nil
}

func copyTicket(ticket model.KitchenOrder) model.KitchenOrder {
	items := make([]model.KitchenItem, len(ticket.Items))
	copy(items, ticket.Items)
	ticket.Items = items
	return ticket
}
