/**
 * @description
 * This is the main entry point for the banking-service. It is responsible for
 * initializing all components of the service: configuration, the seeded
 * in-memory store, the core application service, and the HTTP server. It
 * wires everything together, starts the service, and drains in-flight
 * requests on shutdown.
 *
 * @dependencies
 * - log, net/http, os/signal: Standard Go libraries.
 * - github.com/joho/godotenv: Loads a local .env file during development.
 * - internal/api, internal/app, internal/config, internal/store: Internal
 *   packages for the service.
 */

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/transfa/banking-service/internal/api"
	"github.com/transfa/banking-service/internal/app"
	"github.com/transfa/banking-service/internal/config"
	"github.com/transfa/banking-service/internal/store"
)

func main() {
	// Load .env file if present; environment variables win in deployment.
	if err := godotenv.Load(); err != nil {
		log.Println("level=info component=bootstrap msg=\"no .env file found; relying on environment\"")
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("level=fatal component=bootstrap msg=\"config load failed\" err=%v", err)
	}

	log.Printf("level=info component=bootstrap msg=\"starting banking-service\" port=%s", cfg.ServerPort)

	// The store is constructed here and injected explicitly; there is no
	// ambient singleton.
	repository := store.NewSeededRepository()
	bankingService := app.NewService(repository)
	handlers := api.NewBankingHandlers(bankingService, cfg.MaxTransferAmount)
	router := api.NewRouter(handlers)

	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		log.Printf("level=info component=http msg=\"server listening\" addr=%s", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("level=fatal component=http msg=\"server stopped unexpectedly\" err=%v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Println("level=info component=http msg=\"shutdown started\"")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("level=error component=http msg=\"shutdown failed\" err=%v", err)
	}

	log.Println("level=info component=http msg=\"shutdown complete\"")
}
