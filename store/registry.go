package store

import "sync"

// Floor bundles the three coordinated stores for one provider. Table status,
// kitchen ticket status and order status all read the same floor, so the
// surfaces stay in sync by construction.
type Floor struct {
	Orders  *OrderStore
	Tables  *TableStore
	Kitchen *KitchenStore
}

func NewFloor() *Floor {
	return &Floor{
		Orders:  NewOrderStore(),
		Tables:  NewTableStore(),
		Kitchen: NewKitchenStore(),
	}
}

// Registry hands out one Floor per provider, created on demand. Keeping
// tenants in separate floors lets them be exercised in isolation.
type Registry struct {
	mu     sync.Mutex
	floors map[uint]*Floor
}

func NewRegistry() *Registry {
	return &Registry{floors: make(map[uint]*Floor)}
}

func (r *Registry) Floor(providerId uint) *Floor {
	r.mu.Lock()
	defer r.mu.Unlock()

	floor, ok := r.floors[providerId]
	if !ok {
		floor = NewFloor()
		r.floors[providerId] = floor
	}
	return floor
}
