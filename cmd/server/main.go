package main

import (
	"brevet-controle-service/internal/api"
	"brevet-controle-service/internal/config"
	"brevet-controle-service/internal/platform/metrics"
	"brevet-controle-service/internal/services"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

// main is the application composition root.
// It wires the ACP calculator behind the scheduler port and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	ratePerMinute := config.GetInt("RATE_LIMIT_PER_MINUTE", 120)
	rateBurst := config.GetInt("RATE_LIMIT_BURST", 30)

	calc, err := services.NewCalculator()
	if err != nil {
		log.Fatal(err)
	}

	collector := metrics.NewCollector()
	router := api.NewRouter(calc, collector, ratePerMinute, rateBurst)

	// Timeouts are tuned for small JSON payloads; the computations themselves are CPU-cheap.
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Server listening addr=:%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Println("Shutting down server...")

		// Give outstanding requests ten seconds to complete.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
	log.Println("Server shutdown complete")
}
