/**
 * @description
 * This file defines the core domain models for the banking-service.
 * These structs represent the main entities and data transfer objects (DTOs)
 * used throughout the service's business logic, store, and API layers.
 *
 * @notes
 * - Amounts are stored as `int64` to represent the value in the smallest
 *   currency unit (cents), which avoids floating-point inaccuracies with
 *   financial data. The API layer converts to and from whole currency units
 *   (two decimal places) at the boundary.
 */

package domain

import (
	"math"
	"time"
)

// Customer represents a bank customer. Customers are seeded at startup and are
// immutable for the lifetime of the process.
type Customer struct {
	CustomerID int    `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

// Account represents a bank account owned by a customer. One customer may own
// multiple accounts. The balance is only mutated through transfer execution or
// the initial deposit.
type Account struct {
	AccountID  string `json:"account_id"`
	CustomerID int    `json:"customer_id"`
	Balance    int64  `json:"-"` // in cents
}

// Transfer is the immutable record of a completed balance movement between two
// accounts. Transfers are append-only: never updated or deleted.
type Transfer struct {
	TransactionID  string    `json:"transaction_id"`
	FromAccountID  string    `json:"from_account_id"`
	ToAccountID    string    `json:"to_account_id"`
	TransferAmount int64     `json:"-"` // in cents
	Timestamp      time.Time `json:"timestamp"`
}

// CreateAccountRequest is the DTO for incoming account creation API requests.
// The deposit arrives as a JSON number in whole currency units.
type CreateAccountRequest struct {
	CustomerID     int      `json:"customer_id"`
	InitialDeposit *float64 `json:"initial_deposit"`
}

// TransferRequest is the DTO for incoming transfer API requests.
type TransferRequest struct {
	FromAccountID  string   `json:"from_account_id"`
	ToAccountID    string   `json:"to_account_id"`
	TransferAmount *float64 `json:"transfer_amount"`
}

// ToCents converts a whole-currency-unit amount into cents. The caller is
// expected to have validated the amount to at most two decimal places first.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromCents converts a cents amount back into whole currency units for the
// wire format.
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}

// HasAtMostTwoDecimals reports whether the amount equals its own value rounded
// to two decimal places.
func HasAtMostTwoDecimals(amount float64) bool {
	return math.Round(amount*100)/100 == amount
}
