/**
 * @description
 * Pre-defined initial data for the banking-service. The seed gives the service
 * a usable state at startup: four customers, five accounts, and one historical
 * transfer. Seeding happens before the HTTP server starts accepting requests,
 * so it does not contend with request traffic.
 */

package store

import (
	"time"

	"github.com/transfa/banking-service/internal/domain"
)

// Seed populates the repository with the initial customers, accounts, and
// transfer history. Amounts are in cents.
func (r *MemoryRepository) Seed() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range []domain.Customer{
		{CustomerID: 1, Name: "Arisha Barron", Email: "Arisha@dummy.com"},
		{CustomerID: 2, Name: "Branden Gibson", Email: "Branden@dummy.com"},
		{CustomerID: 3, Name: "Rhonda Church", Email: "Rhonda@dummy.com"},
		{CustomerID: 4, Name: "Georgina Hazel", Email: "Georgina@dummy.com"},
	} {
		r.customers[c.CustomerID] = c
	}

	for _, a := range []domain.Account{
		{AccountID: "acc1-1234", CustomerID: 1, Balance: 100000},
		{AccountID: "acc2-5678", CustomerID: 2, Balance: 50000},
		{AccountID: "acc3-9012", CustomerID: 3, Balance: 75050},
		{AccountID: "acc4-3456", CustomerID: 4, Balance: 200075},
		{AccountID: "acc5-7890", CustomerID: 1, Balance: 25000},
	} {
		cp := a
		r.accounts[a.AccountID] = &cp
	}

	r.transfers = append(r.transfers, domain.Transfer{
		TransactionID:  "txn1-1111",
		FromAccountID:  "acc1-1234",
		ToAccountID:    "acc2-5678",
		TransferAmount: 20000,
		Timestamp:      time.Date(2025, 3, 23, 10, 0, 0, 0, time.UTC),
	})
}
