package finance

import (
	"fmt"
	"time"
)

// Transaction is an immutable record of one money movement on the campaign account
type Transaction struct {
	id              TransactionID
	date            time.Time
	transactionType TransactionType
	amount          int64 // Positive for income, negative for expenses
	balanceBefore   int64
	balanceAfter    int64
	description     string
	relatedEntityID string
}

// NewTransaction creates a new transaction with validation
func NewTransaction(
	date time.Time,
	transactionType TransactionType,
	amount int64,
	balanceBefore int64,
	balanceAfter int64,
	description string,
	relatedEntityID string,
) (*Transaction, error) {
	if !transactionType.IsValid() {
		return nil, &ErrInvalidTransaction{
			Field:  "transaction_type",
			Reason: fmt.Sprintf("invalid transaction type: %s", transactionType),
		}
	}

	t := &Transaction{
		id:              NewTransactionID(),
		date:            date,
		transactionType: transactionType,
		amount:          amount,
		balanceBefore:   balanceBefore,
		balanceAfter:    balanceAfter,
		description:     description,
		relatedEntityID: relatedEntityID,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// ReconstructTransaction rebuilds a transaction from persistence without validation
func ReconstructTransaction(
	id TransactionID,
	date time.Time,
	transactionType TransactionType,
	amount int64,
	balanceBefore int64,
	balanceAfter int64,
	description string,
	relatedEntityID string,
) *Transaction {
	return &Transaction{
		id:              id,
		date:            date,
		transactionType: transactionType,
		amount:          amount,
		balanceBefore:   balanceBefore,
		balanceAfter:    balanceAfter,
		description:     description,
		relatedEntityID: relatedEntityID,
	}
}

// Validate checks that the transaction satisfies all invariants
func (t *Transaction) Validate() error {
	if t.amount == 0 {
		return &ErrInvalidTransaction{Field: "amount", Reason: "amount cannot be zero"}
	}
	if t.transactionType.IsExpense() && t.amount > 0 {
		return &ErrInvalidTransaction{Field: "amount", Reason: "expenses must be negative"}
	}

	// Balance invariant: balance_after must equal balance_before + amount
	expected := t.balanceBefore + t.amount
	if t.balanceAfter != expected {
		return &ErrBalanceInvariantViolation{
			BalanceBefore: t.balanceBefore,
			Amount:        t.amount,
			BalanceAfter:  t.balanceAfter,
			Expected:      expected,
		}
	}
	return nil
}

func (t *Transaction) ID() TransactionID                { return t.id }
func (t *Transaction) Date() time.Time                  { return t.date }
func (t *Transaction) TransactionType() TransactionType { return t.transactionType }
func (t *Transaction) Amount() int64                    { return t.amount }
func (t *Transaction) BalanceBefore() int64             { return t.balanceBefore }
func (t *Transaction) BalanceAfter() int64              { return t.balanceAfter }
func (t *Transaction) Description() string              { return t.description }
func (t *Transaction) RelatedEntityID() string          { return t.relatedEntityID }

// IsIncome returns true if the transaction represents income
func (t *Transaction) IsIncome() bool {
	return t.amount > 0
}

// IsExpense returns true if the transaction represents an expense
func (t *Transaction) IsExpense() bool {
	return t.amount < 0
}

func (t *Transaction) String() string {
	return fmt.Sprintf("Transaction[%s, type=%s, amount=%d, balance=%d->%d]",
		t.id.String(), t.transactionType, t.amount, t.balanceBefore, t.balanceAfter)
}
