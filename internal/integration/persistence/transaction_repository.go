// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/transaction-categorizer/backend/internal/application/adapter"
	"github.com/transaction-categorizer/backend/internal/domain/entity"
	domainerror "github.com/transaction-categorizer/backend/internal/domain/error"
	"github.com/transaction-categorizer/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Save inserts a single transaction.
func (r *transactionRepository) Save(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindAll retrieves every stored transaction.
func (r *transactionRepository) FindAll(ctx context.Context) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for i := range transactionModels {
		transactions = append(transactions, transactionModels[i].ToEntity())
	}
	return transactions, nil
}

// FindByTransactionID retrieves a transaction by its external identifier.
func (r *transactionRepository) FindByTransactionID(ctx context.Context, transactionID string) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// UpsertAll inserts or replaces each transaction keyed by its external
// identifier. Each row is written in its own statement; the batch gives
// no cross-entity atomicity guarantee. Returns the full store contents
// after the write.
func (r *transactionRepository) UpsertAll(ctx context.Context, transactions []*entity.Transaction) ([]*entity.Transaction, error) {
	for _, transaction := range transactions {
		transactionModel := model.TransactionFromEntity(transaction)
		result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "transaction_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"amount", "timestamp", "description", "transaction_type",
				"account_number", "category", "updated_at",
			}),
		}).Create(transactionModel)
		if result.Error != nil {
			return nil, result.Error
		}
	}

	return r.FindAll(ctx)
}
