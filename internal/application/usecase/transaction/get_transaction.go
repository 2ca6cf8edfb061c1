package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/transaction-categorizer/backend/internal/application/adapter"
	"github.com/transaction-categorizer/backend/internal/domain/entity"
	domainerror "github.com/transaction-categorizer/backend/internal/domain/error"
)

// GetTransactionUseCase retrieves a single transaction by its external identifier.
type GetTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTransactionUseCase creates a new GetTransactionUseCase instance.
func NewGetTransactionUseCase(transactionRepo adapter.TransactionRepository) *GetTransactionUseCase {
	return &GetTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute returns the transaction with the given external identifier, or
// (nil, nil) when no such transaction exists. Absence is not an error.
func (uc *GetTransactionUseCase) Execute(ctx context.Context, transactionID string) (*entity.Transaction, error) {
	transaction, err := uc.transactionRepo.FindByTransactionID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to retrieve transaction: %w", err)
	}
	return transaction, nil
}
