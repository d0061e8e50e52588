package order

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderMarshalMergesExtraFields(t *testing.T) {
	o := Order{
		ID:         "order_abc",
		MerchantID: "merchant-1",
		Amount:     250,
		Status:     StatusCreated,
		CreatedAt:  time.Unix(0, 0).UTC(),
		Extra:      map[string]any{"currency": "INR", "notes": map[string]any{"ref": "x"}},
	}

	buf, err := json.Marshal(o)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf, &m))

	assert.Equal(t, "order_abc", m["id"])
	assert.Equal(t, "merchant-1", m["merchant_id"])
	assert.Equal(t, float64(250), m["amount"])
	assert.Equal(t, "created", m["status"])
	assert.Equal(t, "INR", m["currency"])
	assert.Equal(t, map[string]any{"ref": "x"}, m["notes"])
}

func TestOrderMarshalReservedKeysWin(t *testing.T) {
	o := Order{
		ID:     "order_abc",
		Amount: 100,
		Status: StatusCreated,
		Extra:  map[string]any{"id": "spoofed", "status": "paid"},
	}

	buf, err := json.Marshal(o)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf, &m))

	assert.Equal(t, "order_abc", m["id"])
	assert.Equal(t, "created", m["status"])
}

func TestOrderMarshalOmitsEmptyMerchant(t *testing.T) {
	// Fabricated orders have no owning merchant.
	o := Order{ID: "order_x", Amount: 50000, Status: StatusCreated}

	buf, err := json.Marshal(o)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf, &m))

	_, ok := m["merchant_id"]
	assert.False(t, ok)
}
