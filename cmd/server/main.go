/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the electricity cost engine server. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Load an optional custom baseline tariff from JSON
  3. Create API handler with projection config
  4. Configure HTTP router
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port       HTTP server port (default: 8080)
  -years      Default projection horizon in years (default: 15)
  -base-year  Calendar year of the first projected year (default: 2025)
  -tariff     Optional JSON tariff file merged over the built-in defaults

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Exit

EXAMPLES:
  # Run with defaults (July 2025 charges, 15 years from 2025)
  ./server

  # Run with a custom baseline tariff
  ./server -tariff=./winter-2026.json -base-year=2026

SEE ALSO:
  - api/server.go: Router configuration
  - factory/charges.go: Tariff JSON format
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/voltline/cost-engine/api"
	"github.com/voltline/cost-engine/factory"
	"github.com/voltline/cost-engine/tariff"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	years := flag.Int("years", tariff.DefaultHorizonYears, "default projection horizon in years")
	baseYear := flag.Int("base-year", tariff.DefaultBaseYear, "calendar year of the first projected year")
	tariffPath := flag.String("tariff", "", "optional JSON tariff file merged over the built-in defaults")
	flag.Parse()

	// Baseline charges
	baseline := tariff.DefaultCharges()
	if *tariffPath != "" {
		data, err := os.ReadFile(*tariffPath)
		if err != nil {
			log.Fatalf("Failed to read tariff file: %v", err)
		}
		baseline, err = factory.ParseChargeSet(data)
		if err != nil {
			log.Fatalf("Failed to parse tariff file: %v", err)
		}
		log.Printf("Loaded baseline tariff from %s", *tariffPath)
	}

	// Initialize handler and router
	handler := api.NewHandler(api.Config{
		HorizonYears: *years,
		BaseYear:     *baseYear,
		Baseline:     baseline,
	})
	router := api.NewRouter(handler)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on http://localhost:%d", *port)
		log.Printf("Projections: %d years from %d", *years, *baseYear)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
