/**
 * @description
 * This file contains the in-memory implementation of the `Repository`
 * interface. It holds customers, accounts, and the transfer log in process
 * memory, guarded by a single RWMutex: every mutating operation takes the
 * exclusive lock, which is the one correctness-critical concurrency contract
 * in the service (two concurrent transfers touching an overlapping account set
 * must not lose updates). Read-only operations take the shared lock and may
 * observe a balance between the debit and credit of an in-flight transfer;
 * no cross-call isolation is promised to clients.
 *
 * @dependencies
 * - context, encoding/hex, log, sync: Standard Go libraries.
 * - github.com/google/uuid: For generating fresh account identifiers.
 * - internal/domain: For the service's domain models.
 */

package store

import (
	"context"
	"encoding/hex"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/transfa/banking-service/internal/domain"
)

// MemoryRepository is the in-memory data store. It is constructed once in main
// and injected into the application service; there is no package-level
// singleton.
type MemoryRepository struct {
	mu        sync.RWMutex
	customers map[int]domain.Customer
	accounts  map[string]*domain.Account
	transfers []domain.Transfer
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		customers: make(map[int]domain.Customer),
		accounts:  make(map[string]*domain.Account),
	}
}

// NewSeededRepository creates a repository pre-populated with the seed
// customers, accounts, and transfer history.
func NewSeededRepository() *MemoryRepository {
	r := NewMemoryRepository()
	r.Seed()
	log.Printf("level=info component=store msg=\"seeded in-memory store\" customers=%d accounts=%d transfers=%d",
		len(r.customers), len(r.accounts), len(r.transfers))
	return r
}

// newAccountID returns a fresh unique account identifier of the form
// acc-xxxxxxxx.
func newAccountID() string {
	u := uuid.New()
	return "acc-" + hex.EncodeToString(u[:])[:8]
}

func (r *MemoryRepository) GetCustomer(ctx context.Context, customerID int) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.customers[customerID]
	if !ok {
		return nil, ErrCustomerNotFound
	}
	return &c, nil
}

func (r *MemoryRepository) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[accountID]
	if !ok {
		return nil, ErrAccountNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *MemoryRepository) GetAccountsByCustomer(ctx context.Context, customerID int) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.customers[customerID]; !ok {
		return nil, ErrCustomerNotFound
	}
	accounts := make([]domain.Account, 0)
	for _, a := range r.accounts {
		if a.CustomerID == customerID {
			accounts = append(accounts, *a)
		}
	}
	return accounts, nil
}

func (r *MemoryRepository) CreateAccount(ctx context.Context, customerID int, initialDeposit int64) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account := &domain.Account{
		AccountID:  newAccountID(),
		CustomerID: customerID,
		Balance:    initialDeposit,
	}
	r.accounts[account.AccountID] = account
	log.Printf("level=info component=store msg=\"account created\" account_id=%s customer_id=%d balance_cents=%d",
		account.AccountID, customerID, initialDeposit)
	cp := *account
	return &cp, nil
}

func (r *MemoryRepository) GetBalance(ctx context.Context, accountID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[accountID]
	if !ok {
		return 0, ErrAccountNotFound
	}
	return a.Balance, nil
}

// UpdateBalance adds delta to the stored balance. Unlike the usual map
// access pattern, a missing account fails loudly here: callers are expected
// to pre-validate existence, so ErrAccountNotFound from this method indicates
// a programming error rather than a client mistake.
func (r *MemoryRepository) UpdateBalance(ctx context.Context, accountID string, delta int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[accountID]
	if !ok {
		return ErrAccountNotFound
	}
	a.Balance += delta
	return nil
}

func (r *MemoryRepository) AddTransfer(ctx context.Context, transfer domain.Transfer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transfers = append(r.transfers, transfer)
	return nil
}

func (r *MemoryRepository) GetTransfersByAccount(ctx context.Context, accountID string) ([]domain.Transfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.accounts[accountID]; !ok {
		return nil, ErrAccountNotFound
	}
	transfers := make([]domain.Transfer, 0)
	for _, t := range r.transfers {
		if t.FromAccountID == accountID || t.ToAccountID == accountID {
			transfers = append(transfers, t)
		}
	}
	return transfers, nil
}

func (r *MemoryRepository) GetTransfersByCustomer(ctx context.Context, customerID int) ([]domain.Transfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.customers[customerID]; !ok {
		return nil, ErrCustomerNotFound
	}
	owned := make(map[string]bool)
	for _, a := range r.accounts {
		if a.CustomerID == customerID {
			owned[a.AccountID] = true
		}
	}
	transfers := make([]domain.Transfer, 0)
	for _, t := range r.transfers {
		if owned[t.FromAccountID] || owned[t.ToAccountID] {
			transfers = append(transfers, t)
		}
	}
	return transfers, nil
}
