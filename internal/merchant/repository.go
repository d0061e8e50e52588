package merchant

import (
	"context"
	"errors"
)

var ErrInvalidCredentials = errors.New("invalid api credentials")

type Repository interface {
	// Authenticate returns the merchant whose key and secret both match
	// exactly, or ErrInvalidCredentials.
	Authenticate(ctx context.Context, apiKey, apiSecret string) (*Merchant, error)
	// Seeded returns the first seed merchant.
	Seeded(ctx context.Context) (*Merchant, error)
}

// repo holds the static seed set. Merchants are fixed at startup and never
// mutated, so reads need no locking.
type repo struct {
	merchants []Merchant
}

func NewRepository(seed ...Merchant) Repository {
	return &repo{merchants: seed}
}

func (r *repo) Authenticate(ctx context.Context, apiKey, apiSecret string) (*Merchant, error) {
	for i := range r.merchants {
		m := r.merchants[i]
		if m.APIKey == apiKey && m.APISecret == apiSecret {
			return &m, nil
		}
	}
	return nil, ErrInvalidCredentials
}

func (r *repo) Seeded(ctx context.Context) (*Merchant, error) {
	if len(r.merchants) == 0 {
		return nil, errors.New("no seed merchants")
	}
	m := r.merchants[0]
	return &m, nil
}
