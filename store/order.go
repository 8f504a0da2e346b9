package store

import (
	"restaurant_manager/constants"
	"restaurant_manager/model"
	"sync"
)

// orderStatusFlow lists the only legal forward edges. The UI derives its
// action menu from the same table, so a status can never move backwards or
// skip a step through any surface.
var orderStatusFlow = map[string]string{
	constants.ORDER_PENDING: constants.ORDER_COOKING,
	constants.ORDER_COOKING: constants.ORDER_READY,
	constants.ORDER_READY:   constants.ORDER_DELIVERED,
}

// NextOrderStatus returns the single legal next status, if any.
func NextOrderStatus(status string) (string, bool) {
	next, ok := orderStatusFlow[status]
	return next, ok
}

func IsOrderStatus(status string) bool {
	if _, ok := orderStatusFlow[status]; ok {
		return true
	}
	return status == constants.ORDER_DELIVERED
}

// OrderTotal sums quantity * unitPrice over the items.
func OrderTotal(items []model.OrderItem) float64 {
	total := float64(0)
	for _, item := range items {
		total += float64(item.Quantity) * item.UnitPrice
	}
	return total
}

// OrderStore holds the working set of orders for one provider, keyed by
// public code. All mutation goes through it so the total invariant and the
// status flow hold on every surface reading from it.
type OrderStore struct {
	mu     sync.Mutex
	orders map[string]model.Order
	codes  []string // insertion order, for stable listing
}

func NewOrderStore() *OrderStore {
	return &OrderStore{orders: make(map[string]model.Order)}
}

// Add inserts an order, recomputing Total from the items so the stored value
// can never drift from the derived sum.
func (s *OrderStore) Add(order model.Order) error {
	if order.Status == "" {
		order.Status = constants.ORDER_PENDING
	}
	if !IsOrderStatus(order.Status) {
		return ErrUnknownStatus
	}
	order.Total = OrderTotal(order.Items)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.orders[order.PublicCode]; exists {
		return ErrDuplicateOrder
	}
	s.orders[order.PublicCode] = order
	s.codes = append(s.codes, order.PublicCode)
	return nil
}

// List returns copies of the held orders matching the status filter.
// "all" or empty matches everything.
func (s *OrderStore) List(statusFilter string) []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := []model.Order{}
	for _, code := range s.codes {
		order := s.orders[code]
		if statusFilter != "" && statusFilter != "all" && order.Status != statusFilter {
			continue
		}
		result = append(result, copyOrder(order))
	}
	return result
}

// Get re-fetches a single order by public code, for detail views that must
// reflect a status change immediately.
func (s *OrderStore) Get(code string) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[code]
	if !ok {
		return model.Order{}, ErrOrderNotFound
	}
	return copyOrder(order), nil
}

// UpdateStatus moves one order along the status flow. Unknown codes and
// illegal edges are rejected instead of silently ignored.
func (s *OrderStore) UpdateStatus(code, newStatus string) (model.Order, error) {
	if !IsOrderStatus(newStatus) {
		return model.Order{}, ErrUnknownStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[code]
	if !ok {
		return model.Order{}, ErrOrderNotFound
	}
	if next, ok := orderStatusFlow[order.Status]; !ok || next != newStatus {
		return model.Order{}, ErrInvalidTransition
	}
	order.Status = newStatus
	s.orders[code] = order
	return copyOrder(order), nil
}

// SetPaymentMethod records how the order was (or will be) paid.
func (s *OrderStore) SetPaymentMethod(code, method string) (model.Order, error) {
	valid := false
	for _, m := range constants.PAYMENT_METHODS {
		if m == method {
			valid = true
		}
	}
	if !valid {
		return model.Order{}, ErrUnknownStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[code]
	if !ok {
		return model.Order{}, ErrOrderNotFound
	}
	order.PaymentMethod = method
	s.orders[code] = order
	return copyOrder(order), nil
}

func copyOrder(order model.Order) model.Order {
	items := make([]model.OrderItem, len(order.Items))
	copy(items, order.Items)
	order.Items = items
	return order
}
