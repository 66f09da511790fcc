package finance

import (
	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
)

// Account is an in-memory campaign balance with an append-only transaction log.
// It implements Funds.
type Account struct {
	balance      int64
	clock        shared.Clock
	transactions []*Transaction
}

var _ Funds = (*Account)(nil)

// NewAccount creates an account holding balance, dating transactions from clock
func NewAccount(balance int64, clock shared.Clock) *Account {
	return &Account{balance: balance, clock: clock}
}

// Balance returns the current balance
func (a *Account) Balance() int64 {
	return a.balance
}

// CanAfford reports whether amount can be debited
func (a *Account) CanAfford(amount int64) bool {
	return amount >= 0 && amount <= a.balance
}

// Debit removes amount from the balance. Zero is a no-op.
func (a *Account) Debit(amount int64, transactionType TransactionType, description, relatedEntityID string) error {
	if amount < 0 {
		return &ErrInvalidTransaction{Field: "amount", Reason: "debit amount cannot be negative"}
	}
	if amount == 0 {
		return nil
	}
	if !a.CanAfford(amount) {
		return &ErrInsufficientFunds{Balance: a.balance, Amount: amount}
	}
	return a.record(-amount, transactionType, description, relatedEntityID)
}

// Credit adds amount to the balance. Zero is a no-op.
func (a *Account) Credit(amount int64, transactionType TransactionType, description, relatedEntityID string) error {
	if amount < 0 {
		return &ErrInvalidTransaction{Field: "amount", Reason: "credit amount cannot be negative"}
	}
	if amount == 0 {
		return nil
	}
	return a.record(amount, transactionType, description, relatedEntityID)
}

func (a *Account) record(amount int64, transactionType TransactionType, description, relatedEntityID string) error {
	tx, err := NewTransaction(a.clock.Today(), transactionType, amount, a.balance, a.balance+amount, description, relatedEntityID)
	if err != nil {
		return err
	}
	a.balance = tx.BalanceAfter()
	a.transactions = append(a.transactions, tx)
	return nil
}

// Transactions returns the log in the order recorded
func (a *Account) Transactions() []*Transaction {
	return append([]*Transaction(nil), a.transactions...)
}

// DrainTransactions returns and clears transactions recorded since the last drain
func (a *Account) DrainTransactions() []*Transaction {
	drained := a.transactions
	a.transactions = nil
	return drained
}
