/**
 * @description
 * This file defines the `Repository` interface, which specifies the contract
 * for all data access operations required by the banking-service. By defining
 * an interface, we decouple the application's business logic from the specific
 * storage implementation (the in-memory store), making the code more modular
 * and easier to test.
 *
 * @dependencies
 * - context: Standard Go library.
 * - internal/domain: For the service's domain models.
 */

package store

import (
	"context"
	"errors"

	"github.com/transfa/banking-service/internal/domain"
)

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrCustomerNotFound = errors.New("customer not found")
)

// Repository defines the set of methods for interacting with the data store.
type Repository interface {
	// Customer and account lookups.
	GetCustomer(ctx context.Context, customerID int) (*domain.Customer, error)
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
	GetAccountsByCustomer(ctx context.Context, customerID int) ([]domain.Account, error)

	// Account mutation.
	CreateAccount(ctx context.Context, customerID int, initialDeposit int64) (*domain.Account, error)
	GetBalance(ctx context.Context, accountID string) (int64, error)
	// UpdateBalance adds delta (which may be negative) to the stored balance.
	// It fails with ErrAccountNotFound if the account does not exist.
	UpdateBalance(ctx context.Context, accountID string, delta int64) error

	// Transfer log.
	AddTransfer(ctx context.Context, transfer domain.Transfer) error
	GetTransfersByAccount(ctx context.Context, accountID string) ([]domain.Transfer, error)
	GetTransfersByCustomer(ctx context.Context, customerID int) ([]domain.Transfer, error)
}
