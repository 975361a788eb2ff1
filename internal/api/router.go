/**
 * @description
 * This file sets up the HTTP router for the banking-service. It defines the
 * API endpoints, associates them with their corresponding handlers, and
 * applies standard middleware.
 *
 * @dependencies
 * - net/http: Standard Go library for HTTP functionality.
 * - github.com/go-chi/chi/v5: A lightweight and idiomatic router for Go.
 * - github.com/go-chi/cors: CORS middleware for chi.
 */

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates and configures a new HTTP router with the banking routes
// mounted under /api/v1.
func NewRouter(h *BankingHandlers) http.Handler {
	r := chi.NewRouter()

	// Add standard middleware for logging, panic recovery, and timeouts.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("healthy"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/accounts", h.CreateAccountHandler)
		r.Post("/transfers", h.TransferHandler)
		r.Get("/accounts/{accountID}/balance", h.GetBalanceHandler)
		r.Get("/accounts/{accountID}/transfers", h.GetTransferHistoryHandler)
		r.Get("/customers/{customerID}/accounts", h.ListCustomerAccountsHandler)
		r.Get("/customers/{customerID}/transfers", h.ListCustomerTransfersHandler)
	})

	return r
}
