package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/divya9658/Payment-Gateway-with-Async-Processing-and-Webhooks/internal/checkout"
)

// Drives one checkout session against a running payment-service, the same
// flow the hosted checkout page performs.
func main() {
	var (
		baseURL = flag.String("url", "http://localhost:8000", "payment API base URL")
		orderID = flag.String("order", "", "order id to pay (fabricated server-side if unknown)")
		method  = flag.String("method", "card", "payment method: card or upi")
		card    = flag.String("card", "4111111111111111", "card number for -method card")
		vpa     = flag.String("vpa", "test@upi", "VPA for -method upi")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "[checkout] ", log.LstdFlags)

	client, err := checkout.NewClient(*baseURL, nil)
	if err != nil {
		logger.Fatalf("client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	session := checkout.NewSession(client, *orderID)
	session.SelectMethod(*method)

	logger.Printf("paying order %s via %s", session.OrderID, session.Method)

	p, err := session.Submit(ctx, *card, *vpa)
	if err != nil {
		logger.Fatalf("payment failed: %v", err)
	}

	fmt.Print(session.SuccessView())
	fmt.Printf("amount: %d, status: %s\n", p.Amount, p.Status)
}
