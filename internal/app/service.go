/**
 * @description
 * This file contains the core business logic for the banking-service. The
 * `Service` struct enforces the business invariants (customer existence,
 * self-transfer rejection, sufficient funds) before delegating to the store.
 *
 * Key features:
 * - Implements the main use cases: account creation, balance lookup, transfer
 *   execution, and transfer-history retrieval.
 * - Holds the single authoritative self-transfer check; the API layer does
 *   not duplicate business validation.
 * - Domain failures are explicit sentinel errors propagated up to the API
 *   layer, which maps them to transport-level status codes.
 *
 * @dependencies
 * - context, errors, log, time: Standard Go libraries.
 * - github.com/google/uuid: For transaction id generation.
 * - internal/domain, internal/store: For domain models and data access.
 */

package app

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/transfa/banking-service/internal/domain"
	"github.com/transfa/banking-service/internal/store"
)

var (
	ErrSelfTransfer      = errors.New("cannot transfer to the same account")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Service provides the core business logic for banking operations.
type Service struct {
	repo store.Repository
}

// NewService creates a new banking service instance.
func NewService(repo store.Repository) *Service {
	return &Service{repo: repo}
}

// CreateAccount creates a new account for an existing customer with the given
// initial deposit in cents. It fails with store.ErrCustomerNotFound if the
// customer does not exist.
func (s *Service) CreateAccount(ctx context.Context, customerID int, initialDeposit int64) (*domain.Account, error) {
	if _, err := s.repo.GetCustomer(ctx, customerID); err != nil {
		log.Printf("level=warn component=app op=create_account outcome=reject customer_id=%d err=%v", customerID, err)
		return nil, err
	}
	return s.repo.CreateAccount(ctx, customerID, initialDeposit)
}

// GetBalance returns the current balance in cents for the given account.
func (s *Service) GetBalance(ctx context.Context, accountID string) (int64, error) {
	return s.repo.GetBalance(ctx, accountID)
}

// GetTransfers returns every transfer where the given account is sender or
// receiver.
func (s *Service) GetTransfers(ctx context.Context, accountID string) ([]domain.Transfer, error) {
	return s.repo.GetTransfersByAccount(ctx, accountID)
}

// GetCustomerAccounts returns every account owned by the given customer.
func (s *Service) GetCustomerAccounts(ctx context.Context, customerID int) ([]domain.Account, error) {
	return s.repo.GetAccountsByCustomer(ctx, customerID)
}

// GetCustomerTransfers returns every transfer touching any account owned by
// the given customer.
func (s *Service) GetCustomerTransfers(ctx context.Context, customerID int) ([]domain.Transfer, error) {
	return s.repo.GetTransfersByCustomer(ctx, customerID)
}

// ExecuteTransfer moves amount cents from one account to another and records
// an immutable transfer. The debit and credit are two separate store calls;
// the store's coarse mutation lock keeps concurrent transfers over an
// overlapping account set from losing updates.
func (s *Service) ExecuteTransfer(ctx context.Context, fromAccountID, toAccountID string, amount int64) (*domain.Transfer, error) {
	from, err := s.repo.GetAccount(ctx, fromAccountID)
	if err != nil {
		log.Printf("level=warn component=app op=transfer outcome=reject reason=source_not_found from=%s", fromAccountID)
		return nil, err
	}
	to, err := s.repo.GetAccount(ctx, toAccountID)
	if err != nil {
		log.Printf("level=warn component=app op=transfer outcome=reject reason=destination_not_found to=%s", toAccountID)
		return nil, err
	}
	if from.AccountID == to.AccountID {
		log.Printf("level=warn component=app op=transfer outcome=reject reason=self_transfer account_id=%s", fromAccountID)
		return nil, ErrSelfTransfer
	}
	if from.Balance < amount {
		log.Printf("level=warn component=app op=transfer outcome=reject reason=insufficient_funds from=%s balance_cents=%d amount_cents=%d",
			fromAccountID, from.Balance, amount)
		return nil, ErrInsufficientFunds
	}

	if err := s.repo.UpdateBalance(ctx, fromAccountID, -amount); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateBalance(ctx, toAccountID, amount); err != nil {
		return nil, err
	}

	transfer := domain.Transfer{
		TransactionID:  uuid.New().String(),
		FromAccountID:  fromAccountID,
		ToAccountID:    toAccountID,
		TransferAmount: amount,
		Timestamp:      time.Now().UTC(),
	}
	if err := s.repo.AddTransfer(ctx, transfer); err != nil {
		return nil, err
	}

	log.Printf("level=info component=app op=transfer outcome=success transaction_id=%s from=%s to=%s amount_cents=%d",
		transfer.TransactionID, fromAccountID, toAccountID, amount)
	return &transfer, nil
}
