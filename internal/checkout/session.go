package checkout

import (
	"context"
	"errors"
	"fmt"
)

// Status tracks where a checkout session is in its lifecycle.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusProcessing Status = "processing"
	StatusSuccess    Status = "success"
)

const defaultOrderID = "order_default_123"

var ErrInProgress = errors.New("submission already in progress")

// Session models one checkout flow: the shopper picks a method, submits, and
// on success the session latches with the captured payment id. A failed
// submission drops the session back to idle so the shopper can retry.
type Session struct {
	client *Client

	OrderID   string
	Method    string
	Status    Status
	PaymentID string
}

func NewSession(client *Client, orderID string) *Session {
	if orderID == "" {
		orderID = defaultOrderID
	}
	return &Session{
		client:  client,
		OrderID: orderID,
		Method:  "card",
		Status:  StatusIdle,
	}
}

func (s *Session) SelectMethod(method string) {
	if s.Status == StatusSuccess {
		return
	}
	s.Method = method
}

// Submit sends the payment with the currently selected method. cardNumber is
// used for card payments, vpa for UPI.
func (s *Session) Submit(ctx context.Context, cardNumber, vpa string) (*Payment, error) {
	if s.Status == StatusProcessing {
		return nil, ErrInProgress
	}
	if s.Status == StatusSuccess {
		return nil, fmt.Errorf("session already completed with payment %s", s.PaymentID)
	}

	s.Status = StatusProcessing

	req := PaymentRequest{OrderID: s.OrderID, Method: s.Method}
	switch s.Method {
	case "card":
		req.Card = &Card{Number: cardNumber}
	case "upi":
		req.VPA = vpa
	}

	p, err := s.client.CreatePayment(ctx, req)
	if err != nil {
		s.Status = StatusIdle
		return nil, err
	}

	s.Status = StatusSuccess
	s.PaymentID = p.ID
	return p, nil
}

// SuccessView renders the completed-session summary, or "" if the session
// has not succeeded yet.
func (s *Session) SuccessView() string {
	if s.Status != StatusSuccess {
		return ""
	}
	return fmt.Sprintf("Payment Successful!\nYour transaction has been completed successfully.\nPayment ID: %s\n", s.PaymentID)
}
