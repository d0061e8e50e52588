package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/divya9658/Payment-Gateway-with-Async-Processing-and-Webhooks/internal/merchant"
	"github.com/divya9658/Payment-Gateway-with-Async-Processing-and-Webhooks/internal/order"
)

const (
	headerAPIKey    = "x-api-key"
	headerAPISecret = "x-api-secret"
)

type OrderHandler struct {
	svc *order.Service
}

func NewOrderHandler(svc *order.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST_ERROR", "invalid JSON body")
		return
	}

	req := order.CreateRequest{
		Amount: amountFrom(body),
		Extra:  extraFrom(body),
	}

	o, err := h.svc.Create(r.Context(), r.Header.Get(headerAPIKey), r.Header.Get(headerAPISecret), req)
	if err != nil {
		switch {
		case errors.Is(err, merchant.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "AUTHENTICATION_ERROR", "Invalid API credentials")
		case errors.Is(err, order.ErrAmountTooSmall):
			writeError(w, http.StatusBadRequest, "BAD_REQUEST_ERROR", "amount must be at least 100")
		default:
			writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to create order")
		}
		return
	}

	writeJSON(w, http.StatusCreated, o)
}

// amountFrom pulls "amount" out of the raw body. Anything that is not a JSON
// number counts as absent and fails the minimum-amount check downstream.
func amountFrom(body map[string]any) int64 {
	v, ok := body["amount"].(float64)
	if !ok {
		return 0
	}
	return int64(v)
}

// extraFrom returns the caller-supplied fields that are stored verbatim on
// the order. Canonical keys are handled by the order model itself.
func extraFrom(body map[string]any) map[string]any {
	extra := make(map[string]any, len(body))
	for k, v := range body {
		switch k {
		case "amount", "id", "merchant_id", "status", "created_at":
		default:
			extra[k] = v
		}
	}
	return extra
}
