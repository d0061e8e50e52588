package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/divya9658/Payment-Gateway-with-Async-Processing-and-Webhooks/internal/merchant"
	"github.com/divya9658/Payment-Gateway-with-Async-Processing-and-Webhooks/internal/payment"
	"github.com/go-chi/chi/v5"
)

type PaymentHandler struct {
	svc *payment.Service
}

func NewPaymentHandler(svc *payment.Service) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req payment.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST_ERROR", "invalid JSON body")
		return
	}

	p, err := h.svc.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidVPA):
			writeError(w, http.StatusBadRequest, "INVALID_VPA", "VPA format invalid")
		case errors.Is(err, payment.ErrInvalidCard):
			writeError(w, http.StatusBadRequest, "INVALID_CARD", "Card validation failed")
		default:
			writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to create payment")
		}
		return
	}

	writeJSON(w, http.StatusCreated, p)
}

func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, payment.ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND_ERROR", "")
			return
		}
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to load payment")
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.svc.List(r.Context(), r.Header.Get(headerAPIKey), r.Header.Get(headerAPISecret))
	if err != nil {
		if errors.Is(err, merchant.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "AUTHENTICATION_ERROR", "")
			return
		}
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to list payments")
		return
	}

	writeJSON(w, http.StatusOK, payments)
}
