package httpapi

import (
	"io"
	"log"
	"net/http"
	"testing"

	"github.com/divya9658/Payment-Gateway-with-Async-Processing-and-Webhooks/internal/merchant"
	"github.com/divya9658/Payment-Gateway-with-Async-Processing-and-Webhooks/internal/order"
	"github.com/divya9658/Payment-Gateway-with-Async-Processing-and-Webhooks/internal/payment"
)

const (
	testAPIKey    = "key_test_abc123"
	testAPISecret = "secret_test_xyz789"
)

// newTestRouter wires the full router over fresh in-memory state.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	merchants := merchant.NewRepository(merchant.Merchant{
		ID:        "550e8400-e29b-41d4-a716-446655440000",
		APIKey:    testAPIKey,
		APISecret: testAPISecret,
	})
	orderRepo := order.NewRepository()

	return NewRouter(Deps{
		Logger:           log.New(io.Discard, "", 0),
		Merchants:        merchants,
		Orders:           order.NewService(merchants, orderRepo),
		Payments:         payment.NewService(merchants, orderRepo, payment.NewRepository(), 0),
		CORSAllowOrigins: []string{"*"},
	})
}
