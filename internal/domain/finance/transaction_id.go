package finance

import (
	"fmt"

	"github.com/google/uuid"
)

// TransactionID identifies one ledger entry
type TransactionID struct {
	value uuid.UUID
}

func NewTransactionID() TransactionID {
	return TransactionID{value: uuid.New()}
}

// ParseTransactionID restores an ID read back from storage
func ParseTransactionID(id string) (TransactionID, error) {
	if id == "" {
		return TransactionID{}, fmt.Errorf("transaction id cannot be empty")
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return TransactionID{}, fmt.Errorf("invalid transaction id %q: %w", id, err)
	}
	return TransactionID{value: parsed}, nil
}

func (t TransactionID) String() string {
	if t.IsZero() {
		return ""
	}
	return t.value.String()
}

func (t TransactionID) IsZero() bool {
	return t.value == uuid.Nil
}
