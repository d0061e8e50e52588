package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/divya9658/Payment-Gateway-with-Async-Processing-and-Webhooks/internal/ident"
	"github.com/divya9658/Payment-Gateway-with-Async-Processing-and-Webhooks/internal/merchant"
)

// MinAmount is the smallest accepted order amount, in minor currency units.
const MinAmount = 100

var ErrAmountTooSmall = errors.New("amount must be at least 100")

type CreateRequest struct {
	Amount int64
	// Extra carries every other field from the request body; it is stored
	// on the order unchanged.
	Extra map[string]any
}

type Service struct {
	merchants merchant.Repository
	repo      Repository
}

func NewService(merchants merchant.Repository, repo Repository) *Service {
	return &Service{merchants: merchants, repo: repo}
}

// Create authenticates the caller, enforces the minimum amount and stores a
// new order. There is no idempotency key and no duplicate detection; every
// call that passes validation produces a fresh order.
func (s *Service) Create(ctx context.Context, apiKey, apiSecret string, req CreateRequest) (*Order, error) {
	m, err := s.merchants.Authenticate(ctx, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}

	if req.Amount < MinAmount {
		return nil, ErrAmountTooSmall
	}

	o := &Order{
		ID:         ident.New("order_"),
		MerchantID: m.ID,
		Amount:     req.Amount,
		Status:     StatusCreated,
		CreatedAt:  time.Now().UTC(),
		Extra:      req.Extra,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("store order: %w", err)
	}
	return o, nil
}
