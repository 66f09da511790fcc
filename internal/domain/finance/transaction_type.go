package finance

// TransactionType represents the kind of money movement
type TransactionType string

const (
	// TransactionTypeAcquisition is payment for an item found by the procurement cycle
	TransactionTypeAcquisition TransactionType = "ACQUISITION"

	// TransactionTypePartPurchase is a direct purchase by the quartermaster
	TransactionTypePartPurchase TransactionType = "PART_PURCHASE"

	// TransactionTypePartSale is income from selling stock
	TransactionTypePartSale TransactionType = "PART_SALE"

	// TransactionTypeDeposit adds funds from outside the logistics engine
	TransactionTypeDeposit TransactionType = "DEPOSIT"
)

// AllTransactionTypes returns all valid transaction types
func AllTransactionTypes() []TransactionType {
	return []TransactionType{
		TransactionTypeAcquisition,
		TransactionTypePartPurchase,
		TransactionTypePartSale,
		TransactionTypeDeposit,
	}
}

func (t TransactionType) String() string {
	return string(t)
}

// IsValid checks if the transaction type is valid
func (t TransactionType) IsValid() bool {
	for _, known := range AllTransactionTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// IsExpense reports whether the type takes money out of the account
func (t TransactionType) IsExpense() bool {
	return t == TransactionTypeAcquisition || t == TransactionTypePartPurchase
}
