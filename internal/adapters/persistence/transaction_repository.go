package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/starlane-logistics/internal/domain/finance"
)

// GormTransactionRepository implements TransactionRepository using GORM
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GORM transaction repository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// Create persists a new transaction
func (r *GormTransactionRepository) Create(ctx context.Context, transaction *finance.Transaction) error {
	model := r.transactionToModel(transaction)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return fmt.Errorf("failed to create transaction: %w", result.Error)
	}

	return nil
}

// List retrieves transactions with optional filtering, newest first
func (r *GormTransactionRepository) List(ctx context.Context, opts finance.QueryOptions) ([]*finance.Transaction, error) {
	query := r.applyFilters(r.db.WithContext(ctx), opts)
	query = query.Order("date DESC").Order("created_at DESC")

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		query = query.Offset(opts.Offset)
	}

	var models []TransactionModel
	result := query.Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find transactions: %w", result.Error)
	}

	transactions := make([]*finance.Transaction, len(models))
	for i := range models {
		tx, err := r.modelToTransaction(&models[i])
		if err != nil {
			return nil, fmt.Errorf("failed to convert transaction model: %w", err)
		}
		transactions[i] = tx
	}

	return transactions, nil
}

// applyFilters applies query options to a GORM query
func (r *GormTransactionRepository) applyFilters(query *gorm.DB, opts finance.QueryOptions) *gorm.DB {
	if opts.StartDate != nil {
		query = query.Where("date >= ?", *opts.StartDate)
	}
	if opts.EndDate != nil {
		query = query.Where("date <= ?", *opts.EndDate)
	}
	if opts.TransactionType != nil {
		query = query.Where("transaction_type = ?", opts.TransactionType.String())
	}
	return query
}

// modelToTransaction converts database model to domain entity
func (r *GormTransactionRepository) modelToTransaction(model *TransactionModel) (*finance.Transaction, error) {
	id, err := finance.ParseTransactionID(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction ID in database: %w", err)
	}

	transactionType := finance.TransactionType(model.TransactionType)
	if !transactionType.IsValid() {
		return nil, fmt.Errorf("invalid transaction type in database: %s", model.TransactionType)
	}

	return finance.ReconstructTransaction(
		id,
		model.Date,
		transactionType,
		model.Amount,
		model.BalanceBefore,
		model.BalanceAfter,
		model.Description,
		model.RelatedEntityID,
	), nil
}

// transactionToModel converts domain entity to database model
func (r *GormTransactionRepository) transactionToModel(tx *finance.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:              tx.ID().String(),
		Date:            tx.Date(),
		TransactionType: tx.TransactionType().String(),
		Amount:          tx.Amount(),
		BalanceBefore:   tx.BalanceBefore(),
		BalanceAfter:    tx.BalanceAfter(),
		Description:     tx.Description(),
		RelatedEntityID: tx.RelatedEntityID(),
	}
}
