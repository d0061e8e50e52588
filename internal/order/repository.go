package order

import (
	"context"
	"sync"
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, orderID string) (*Order, error)
}

// repo keeps orders in a process-local map. State lives exactly as long as
// the process; there is no eviction and nothing is ever deleted.
type repo struct {
	mu     sync.RWMutex
	orders map[string]*Order
}

func NewRepository() Repository {
	return &repo{orders: make(map[string]*Order)}
}

func (r *repo) Create(ctx context.Context, o *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = o
	return nil
}

func (r *repo) GetByID(ctx context.Context, orderID string) (*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[orderID]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}
