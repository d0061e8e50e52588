package httpapi

import (
	"net/http"

	"github.com/divya9658/Payment-Gateway-with-Async-Processing-and-Webhooks/internal/merchant"
)

type MerchantHandler struct {
	repo merchant.Repository
}

func NewMerchantHandler(repo merchant.Repository) *MerchantHandler {
	return &MerchantHandler{repo: repo}
}

// TestMerchant returns the seed merchant, secret included, so integration
// tests can discover credentials. Diagnostic only; never expose publicly.
func (h *MerchantHandler) TestMerchant(w http.ResponseWriter, r *http.Request) {
	m, err := h.repo.Seeded(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "no seed merchant")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":         m.ID,
		"api_key":    m.APIKey,
		"api_secret": m.APISecret,
		"seeded":     true,
	})
}
