package transaction

import (
	"context"
	"fmt"

	"github.com/transaction-categorizer/backend/internal/application/adapter"
	"github.com/transaction-categorizer/backend/internal/domain/entity"
)

// ListTransactionsUseCase retrieves every stored transaction.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute returns all stored transactions.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context) ([]*entity.Transaction, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}
