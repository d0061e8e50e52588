package checkout

import (
	"context"
	"io"
	"log"
	"net/http/httptest"
	"testing"

	httpapi "github.com/divya9658/Payment-Gateway-with-Async-Processing-and-Webhooks/internal/http"
	"github.com/divya9658/Payment-Gateway-with-Async-Processing-and-Webhooks/internal/merchant"
	"github.com/divya9658/Payment-Gateway-with-Async-Processing-and-Webhooks/internal/order"
	"github.com/divya9658/Payment-Gateway-with-Async-Processing-and-Webhooks/internal/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAPIKey    = "key_test_abc123"
	testAPISecret = "secret_test_xyz789"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	merchants := merchant.NewRepository(merchant.Merchant{
		ID:        "merchant-1",
		APIKey:    testAPIKey,
		APISecret: testAPISecret,
	})
	orderRepo := order.NewRepository()

	router := httpapi.NewRouter(httpapi.Deps{
		Logger:           log.New(io.Discard, "", 0),
		Merchants:        merchants,
		Orders:           order.NewService(merchants, orderRepo),
		Payments:         payment.NewService(merchants, orderRepo, payment.NewRepository(), 0),
		CORSAllowOrigins: []string{"*"},
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	client, err := NewClient(srv.URL, srv.Client())
	require.NoError(t, err)
	client.APIKey = testAPIKey
	client.APISecret = testAPISecret
	return client
}

func TestCheckoutCardFlow(t *testing.T) {
	srv := newTestServer(t)
	client := newTestClient(t, srv)
	ctx := context.Background()

	o, err := client.CreateOrder(ctx, 12345, map[string]any{"receipt": "rcpt-1"})
	require.NoError(t, err)

	session := NewSession(client, o.ID)
	assert.Equal(t, StatusIdle, session.Status)
	assert.Equal(t, "card", session.Method)

	p, err := session.Submit(ctx, "4111111111111111", "")
	require.NoError(t, err)

	assert.Equal(t, StatusSuccess, session.Status)
	assert.Equal(t, p.ID, session.PaymentID)
	assert.Equal(t, int64(12345), p.Amount)
	require.NotNil(t, p.CardNetwork)
	assert.Equal(t, "visa", *p.CardNetwork)
	assert.Contains(t, session.SuccessView(), p.ID)
}

func TestCheckoutUPIFlow(t *testing.T) {
	srv := newTestServer(t)
	client := newTestClient(t, srv)
	ctx := context.Background()

	session := NewSession(client, "")
	session.SelectMethod("upi")

	p, err := session.Submit(ctx, "", "shopper@bank")
	require.NoError(t, err)

	// The default order id does not exist server-side; the service
	// fabricates it with the fallback amount.
	assert.Equal(t, "order_default_123", session.OrderID)
	assert.Equal(t, int64(50000), p.Amount)
	require.NotNil(t, p.VPA)
	assert.Equal(t, "shopper@bank", *p.VPA)
}

func TestCheckoutFailureReturnsToIdle(t *testing.T) {
	srv := newTestServer(t)
	client := newTestClient(t, srv)
	ctx := context.Background()

	session := NewSession(client, "order_x")

	_, err := session.Submit(ctx, "4111111111111112", "")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "INVALID_CARD", apiErr.Code)
	assert.Equal(t, 400, apiErr.Status)

	assert.Equal(t, StatusIdle, session.Status)
	assert.Empty(t, session.PaymentID)
	assert.Empty(t, session.SuccessView())

	// Retry with a valid number succeeds.
	_, err = session.Submit(ctx, "4111111111111111", "")
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, session.Status)
}

func TestCheckoutCompletedSessionRejectsResubmit(t *testing.T) {
	srv := newTestServer(t)
	client := newTestClient(t, srv)
	ctx := context.Background()

	session := NewSession(client, "order_x")
	_, err := session.Submit(ctx, "4111111111111111", "")
	require.NoError(t, err)

	_, err = session.Submit(ctx, "4111111111111111", "")
	require.Error(t, err)

	// Method selection is also latched after success.
	session.SelectMethod("upi")
	assert.Equal(t, "card", session.Method)
}

func TestClientListAndGet(t *testing.T) {
	srv := newTestServer(t)
	client := newTestClient(t, srv)
	ctx := context.Background()

	created, err := client.CreatePayment(ctx, PaymentRequest{
		OrderID: "order_1",
		Method:  "upi",
		VPA:     "a@b",
	})
	require.NoError(t, err)

	got, err := client.GetPayment(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	payments, err := client.ListPayments(ctx)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, created.ID, payments[0].ID)
}

func TestClientListUnauthorized(t *testing.T) {
	srv := newTestServer(t)
	client, err := NewClient(srv.URL, srv.Client())
	require.NoError(t, err)

	_, err = client.ListPayments(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "AUTHENTICATION_ERROR", apiErr.Code)
	assert.Equal(t, 401, apiErr.Status)
}
