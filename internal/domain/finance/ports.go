package finance

import (
	"context"
	"time"
)

// Funds is the contract the logistics engine consumes from the campaign finances
type Funds interface {
	CanAfford(amount int64) bool

	// Debit removes amount; an error means the transaction failed and nothing changed
	Debit(amount int64, transactionType TransactionType, description, relatedEntityID string) error

	Credit(amount int64, transactionType TransactionType, description, relatedEntityID string) error
}

// TransactionRepository defines persistence operations for transactions
type TransactionRepository interface {
	Create(ctx context.Context, transaction *Transaction) error
	List(ctx context.Context, opts QueryOptions) ([]*Transaction, error)
}

// QueryOptions defines filtering and pagination options for transaction queries
type QueryOptions struct {
	StartDate       *time.Time
	EndDate         *time.Time
	TransactionType *TransactionType
	Limit           int
	Offset          int
}

// DefaultQueryOptions returns default query options
func DefaultQueryOptions() QueryOptions {
	return QueryOptions{Limit: 50}
}
