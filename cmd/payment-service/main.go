package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/divya9658/Payment-Gateway-with-Async-Processing-and-Webhooks/internal/config"
	httpapi "github.com/divya9658/Payment-Gateway-with-Async-Processing-and-Webhooks/internal/http"
	"github.com/divya9658/Payment-Gateway-with-Async-Processing-and-Webhooks/internal/merchant"
	"github.com/divya9658/Payment-Gateway-with-Async-Processing-and-Webhooks/internal/order"
	"github.com/divya9658/Payment-Gateway-with-Async-Processing-and-Webhooks/internal/payment"
)

func main() {
	cfg := config.Load()

	logger := log.New(os.Stdout, "[payment-service] ", log.LstdFlags|log.Lmicroseconds)

	merchants := merchant.NewRepository(merchant.Merchant{
		ID:        cfg.SeedMerchantID,
		APIKey:    cfg.SeedAPIKey,
		APISecret: cfg.SeedAPISecret,
	})
	orderRepo := order.NewRepository()
	paymentRepo := payment.NewRepository()

	orderSvc := order.NewService(merchants, orderRepo)
	paymentSvc := payment.NewService(merchants, orderRepo, paymentRepo, cfg.ProcessingDelay)

	router := httpapi.NewRouter(httpapi.Deps{
		Logger:           logger,
		Merchants:        merchants,
		Orders:           orderSvc,
		Payments:         paymentSvc,
		CORSAllowOrigins: cfg.CORSAllowOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Printf("API running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Printf("shutdown requested")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("shutdown error: %v", err)
	}
	logger.Printf("shutdown complete")
}
