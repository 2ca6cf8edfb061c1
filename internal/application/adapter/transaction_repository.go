// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/transaction-categorizer/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Save inserts a single transaction.
	Save(ctx context.Context, transaction *entity.Transaction) error

	// FindAll retrieves every stored transaction.
	FindAll(ctx context.Context) ([]*entity.Transaction, error)

	// FindByTransactionID retrieves a transaction by its external identifier.
	// Returns domainerror.ErrTransactionNotFound when no record exists.
	FindByTransactionID(ctx context.Context, transactionID string) (*entity.Transaction, error)

	// UpsertAll inserts or replaces each transaction keyed by its external
	// identifier and returns the full store contents after the write.
	UpsertAll(ctx context.Context, transactions []*entity.Transaction) ([]*entity.Transaction, error)
}
