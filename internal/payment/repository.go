package payment

import (
	"context"
	"sync"
)

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	GetByID(ctx context.Context, id string) (*Payment, error)
	List(ctx context.Context) ([]Payment, error)
}

// repo keeps payments in a process-local map plus an insertion-ordered index
// so listings come back in creation order. Grow-only, like the order store.
type repo struct {
	mu      sync.RWMutex
	byID    map[string]*Payment
	ordered []*Payment
}

func NewRepository() Repository {
	return &repo{byID: make(map[string]*Payment)}
}

func (r *repo) Create(ctx context.Context, p *Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[p.ID] = p
	r.ordered = append(r.ordered, p)
	return nil
}

func (r *repo) GetByID(ctx context.Context, id string) (*Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *repo) List(ctx context.Context) ([]Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Payment, 0, len(r.ordered))
	for _, p := range r.ordered {
		out = append(out, *p)
	}
	return out, nil
}
