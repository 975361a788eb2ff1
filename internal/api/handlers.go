/**
 * @description
 * This file contains the HTTP handlers for the banking-service's API
 * endpoints. Handlers are responsible for parsing incoming requests,
 * validating input before it reaches the business logic, calling the
 * appropriate methods on the application service, and wrapping results in the
 * uniform response envelope. Domain errors are mapped to fixed HTTP statuses
 * and human-readable messages here; no internal details leak to clients.
 *
 * @dependencies
 * - encoding/json, errors, fmt, log, net/http, strconv: Standard Go libraries.
 * - github.com/go-chi/chi/v5: For URL parameters.
 * - internal/app, internal/domain, internal/store: For service logic, models,
 *   and sentinel errors.
 */

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/transfa/banking-service/internal/app"
	"github.com/transfa/banking-service/internal/domain"
	"github.com/transfa/banking-service/internal/store"
)

const maxAccountIDLength = 36

// BankingHandlers holds the application service that handlers will use.
type BankingHandlers struct {
	service   *app.Service
	maxAmount float64
}

// NewBankingHandlers creates a new instance of BankingHandlers. maxAmount is
// the upper bound accepted for deposits and transfers, in whole currency
// units.
func NewBankingHandlers(service *app.Service, maxAmount float64) *BankingHandlers {
	return &BankingHandlers{service: service, maxAmount: maxAmount}
}

// accountResponse is the wire representation of an account, with the balance
// in whole currency units.
type accountResponse struct {
	AccountID  string  `json:"account_id"`
	CustomerID int     `json:"customer_id"`
	Balance    float64 `json:"balance"`
}

// transferResponse is the wire representation of a transfer record.
type transferResponse struct {
	TransactionID  string    `json:"transaction_id"`
	FromAccountID  string    `json:"from_account_id"`
	ToAccountID    string    `json:"to_account_id"`
	TransferAmount float64   `json:"transfer_amount"`
	Timestamp      time.Time `json:"timestamp"`
}

// balanceResponse is the payload for balance lookups.
type balanceResponse struct {
	AccountID      string  `json:"account_id"`
	CurrentBalance float64 `json:"current_balance"`
}

func buildAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{
		AccountID:  a.AccountID,
		CustomerID: a.CustomerID,
		Balance:    domain.FromCents(a.Balance),
	}
}

func buildTransferResponse(t domain.Transfer) transferResponse {
	return transferResponse{
		TransactionID:  t.TransactionID,
		FromAccountID:  t.FromAccountID,
		ToAccountID:    t.ToAccountID,
		TransferAmount: domain.FromCents(t.TransferAmount),
		Timestamp:      t.Timestamp,
	}
}

func buildTransferListResponse(transfers []domain.Transfer) []transferResponse {
	out := make([]transferResponse, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, buildTransferResponse(t))
	}
	return out
}

// validateAmount checks the shared amount rules: strictly positive, within the
// configured maximum, and at most two decimal places. It returns the specific
// constraint violated, or an empty string when the amount is valid.
func (h *BankingHandlers) validateAmount(field string, amount float64) string {
	if amount <= 0 {
		return fmt.Sprintf("%s must be greater than 0", field)
	}
	if amount > h.maxAmount {
		return fmt.Sprintf("%s must not exceed %.0f", field, h.maxAmount)
	}
	if !domain.HasAtMostTwoDecimals(amount) {
		return fmt.Sprintf("%s must have at most 2 decimal places", field)
	}
	return ""
}

// writeDomainError maps domain error kinds to their fixed HTTP status and
// message.
func (h *BankingHandlers) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrAccountNotFound):
		writeFailure(w, http.StatusNotFound, "Account not found")
	case errors.Is(err, store.ErrCustomerNotFound):
		writeFailure(w, http.StatusNotFound, "Customer Id not found")
	case errors.Is(err, app.ErrInsufficientFunds):
		writeFailure(w, http.StatusBadRequest, "Transfer cannot be completed. Insufficient funds")
	case errors.Is(err, app.ErrSelfTransfer):
		writeFailure(w, http.StatusBadRequest, "Transfer cannot be completed. Cannot transfer money to the same account")
	default:
		log.Printf("level=error component=api msg=\"unexpected service error\" err=%v", err)
		writeFailure(w, http.StatusInternalServerError, "Internal server error")
	}
}

// CreateAccountHandler handles requests to open a new account for a customer.
func (h *BankingHandlers) CreateAccountHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("level=warn component=api endpoint=create_account outcome=reject reason=invalid_json err=%v", err)
		writeFailure(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	if req.CustomerID <= 0 {
		writeFailure(w, http.StatusUnprocessableEntity, "customer_id must be a positive integer")
		return
	}
	if req.InitialDeposit == nil {
		writeFailure(w, http.StatusUnprocessableEntity, "initial_deposit is required")
		return
	}
	if msg := h.validateAmount("initial_deposit", *req.InitialDeposit); msg != "" {
		log.Printf("level=warn component=api endpoint=create_account outcome=reject reason=validation customer_id=%d", req.CustomerID)
		writeFailure(w, http.StatusUnprocessableEntity, msg)
		return
	}

	account, err := h.service.CreateAccount(r.Context(), req.CustomerID, domain.ToCents(*req.InitialDeposit))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, buildAccountResponse(account), "Account created successfully")
}

// TransferHandler handles requests to move money between two accounts.
func (h *BankingHandlers) TransferHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("level=warn component=api endpoint=transfer outcome=reject reason=invalid_json err=%v", err)
		writeFailure(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	if req.FromAccountID == "" || len(req.FromAccountID) > maxAccountIDLength {
		writeFailure(w, http.StatusUnprocessableEntity, "from_account_id must be a non-empty string of at most 36 characters")
		return
	}
	if req.ToAccountID == "" || len(req.ToAccountID) > maxAccountIDLength {
		writeFailure(w, http.StatusUnprocessableEntity, "to_account_id must be a non-empty string of at most 36 characters")
		return
	}
	if req.TransferAmount == nil {
		writeFailure(w, http.StatusUnprocessableEntity, "transfer_amount is required")
		return
	}
	if msg := h.validateAmount("transfer_amount", *req.TransferAmount); msg != "" {
		log.Printf("level=warn component=api endpoint=transfer outcome=reject reason=validation from=%s to=%s", req.FromAccountID, req.ToAccountID)
		writeFailure(w, http.StatusUnprocessableEntity, msg)
		return
	}

	transfer, err := h.service.ExecuteTransfer(r.Context(), req.FromAccountID, req.ToAccountID, domain.ToCents(*req.TransferAmount))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, buildTransferResponse(*transfer), "Transfer executed successfully")
}

// GetBalanceHandler handles requests for an account's current balance.
func (h *BankingHandlers) GetBalanceHandler(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	balance, err := h.service.GetBalance(r.Context(), accountID)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	payload := balanceResponse{
		AccountID:      accountID,
		CurrentBalance: domain.FromCents(balance),
	}
	writeSuccess(w, http.StatusOK, payload, "Account balance retrieved successfully")
}

// GetTransferHistoryHandler handles requests for an account's transfer
// history.
func (h *BankingHandlers) GetTransferHistoryHandler(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	transfers, err := h.service.GetTransfers(r.Context(), accountID)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, buildTransferListResponse(transfers), "Transaction History retrieved successfully")
}

// ListCustomerAccountsHandler handles requests for every account owned by a
// customer.
func (h *BankingHandlers) ListCustomerAccountsHandler(w http.ResponseWriter, r *http.Request) {
	customerID, ok := h.parseCustomerID(w, r)
	if !ok {
		return
	}

	accounts, err := h.service.GetCustomerAccounts(r.Context(), customerID)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	out := make([]accountResponse, 0, len(accounts))
	for i := range accounts {
		out = append(out, buildAccountResponse(&accounts[i]))
	}
	writeSuccess(w, http.StatusOK, out, "Accounts retrieved successfully")
}

// ListCustomerTransfersHandler handles requests for every transfer touching a
// customer's accounts.
func (h *BankingHandlers) ListCustomerTransfersHandler(w http.ResponseWriter, r *http.Request) {
	customerID, ok := h.parseCustomerID(w, r)
	if !ok {
		return
	}

	transfers, err := h.service.GetCustomerTransfers(r.Context(), customerID)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, buildTransferListResponse(transfers), "Transaction History retrieved successfully")
}

func (h *BankingHandlers) parseCustomerID(w http.ResponseWriter, r *http.Request) (int, bool) {
	customerID, err := strconv.Atoi(chi.URLParam(r, "customerID"))
	if err != nil || customerID <= 0 {
		writeFailure(w, http.StatusUnprocessableEntity, "customer_id must be a positive integer")
		return 0, false
	}
	return customerID, true
}
