package order

import (
	"encoding/json"
	"time"
)

type Order struct {
	ID         string
	MerchantID string
	Amount     int64
	Status     Status
	CreatedAt  time.Time

	// Extra holds any other fields the caller supplied at creation time,
	// stored verbatim and echoed back on every response.
	Extra map[string]any
}

// MarshalJSON merges Extra with the canonical fields. Canonical keys win on
// conflict. merchant_id is omitted for orders that have no owner (the ones
// fabricated by the payment service).
func (o Order) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(o.Extra)+5)
	for k, v := range o.Extra {
		m[k] = v
	}
	m["id"] = o.ID
	if o.MerchantID != "" {
		m["merchant_id"] = o.MerchantID
	}
	m["amount"] = o.Amount
	m["status"] = o.Status
	m["created_at"] = o.CreatedAt
	return json.Marshal(m)
}
