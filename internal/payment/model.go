package payment

import "time"

const (
	MethodCard = "card"
	MethodUPI  = "upi"
)

// StatusSuccess is the only payment status: once format validation passes, a
// payment succeeds by construction. No decline or timeout state exists.
const StatusSuccess = "success"

type Card struct {
	Number string `json:"number"`
}

// Payment is immutable once stored. CardNetwork/CardLast4 are set only for
// card payments and VPA only for UPI payments; the rest marshal as explicit
// nulls, matching the wire format callers already depend on.
type Payment struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	Amount      int64     `json:"amount"`
	Status      string    `json:"status"`
	Method      string    `json:"method"`
	CardNetwork *string   `json:"card_network"`
	CardLast4   *string   `json:"card_last4"`
	VPA         *string   `json:"vpa"`
	CreatedAt   time.Time `json:"created_at"`
}
