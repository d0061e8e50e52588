package order

type Status string

const (
	// StatusCreated is the only status an order ever holds here; nothing in
	// the API transitions an order further.
	StatusCreated Status = "created"
)
