package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/divya9658/Payment-Gateway-with-Async-Processing-and-Webhooks/internal/ident"
	"github.com/divya9658/Payment-Gateway-with-Async-Processing-and-Webhooks/internal/merchant"
	"github.com/divya9658/Payment-Gateway-with-Async-Processing-and-Webhooks/internal/order"
)

// FallbackOrderAmount is the amount, in minor units, given to orders
// fabricated for unknown order ids.
const FallbackOrderAmount = 50000

var (
	ErrInvalidVPA  = errors.New("vpa format invalid")
	ErrInvalidCard = errors.New("card validation failed")
	ErrNotFound    = errors.New("payment not found")
)

type CreateRequest struct {
	OrderID string `json:"order_id"`
	Method  string `json:"method"`
	VPA     string `json:"vpa,omitempty"`
	Card    *Card  `json:"card,omitempty"`
}

type Service struct {
	merchants merchant.Repository
	orders    order.Repository
	payments  Repository
	delay     time.Duration
}

// NewService wires the payment service. delay, when non-zero, is applied
// before a payment is captured (the TEST_PROCESSING_DELAY knob).
func NewService(merchants merchant.Repository, orders order.Repository, payments Repository, delay time.Duration) *Service {
	return &Service{merchants: merchants, orders: orders, payments: payments, delay: delay}
}

// Create records a payment against req.OrderID. Unknown order ids are not an
// error: a placeholder order is fabricated and stored first, so any id is
// payable. Method-specific format checks are the only validation; once they
// pass the payment is unconditionally successful. Methods other than "card"
// and "upi" skip validation entirely and produce a payment with null
// instrument fields. Nothing prevents paying the same order twice.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Payment, error) {
	o, err := s.orders.GetByID(ctx, req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}
	if o == nil {
		o = &order.Order{
			ID:        req.OrderID,
			Amount:    FallbackOrderAmount,
			Status:    order.StatusCreated,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.orders.Create(ctx, o); err != nil {
			return nil, fmt.Errorf("store fallback order: %w", err)
		}
	}

	switch req.Method {
	case MethodUPI:
		if !ValidVPA(req.VPA) {
			return nil, ErrInvalidVPA
		}
	case MethodCard:
		if req.Card == nil || req.Card.Number == "" || !ValidLuhn(req.Card.Number) {
			return nil, ErrInvalidCard
		}
	}

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	p := &Payment{
		ID:        ident.New("pay_"),
		OrderID:   req.OrderID,
		Amount:    o.Amount,
		Status:    StatusSuccess,
		Method:    req.Method,
		CreatedAt: time.Now().UTC(),
	}
	switch req.Method {
	case MethodCard:
		network := string(NetworkOf(req.Card.Number))
		last4 := req.Card.Number
		if len(last4) > 4 {
			last4 = last4[len(last4)-4:]
		}
		p.CardNetwork = &network
		p.CardLast4 = &last4
	case MethodUPI:
		vpa := req.VPA
		p.VPA = &vpa
	}

	if err := s.payments.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("store payment: %w", err)
	}
	return p, nil
}

// Get looks up a stored payment. No side effects.
func (s *Service) Get(ctx context.Context, id string) (*Payment, error) {
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load payment: %w", err)
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// List authenticates the caller and returns every stored payment in creation
// order. Listing is deliberately not scoped to the authenticated merchant;
// callers see payments for all merchants' orders.
func (s *Service) List(ctx context.Context, apiKey, apiSecret string) ([]Payment, error) {
	if _, err := s.merchants.Authenticate(ctx, apiKey, apiSecret); err != nil {
		return nil, err
	}
	return s.payments.List(ctx)
}
